package models

// Review is one client testimonial. Entries are immutable once created.
type Review struct {
	ID         string `json:"id"`
	AuthorName string `json:"name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
}

// SeedReviews returns the salon's standing testimonials, shown until clients
// start submitting their own.
func SeedReviews() []Review {
	return []Review{
		{ID: "1", AuthorName: "Мария", Rating: 5, Text: "Прекрасный салон! Очень внимательный персонал и отличный сервис."},
		{ID: "2", AuthorName: "Анна", Rating: 5, Text: "Всегда выхожу довольная. Мастера профессионалы своего дела!"},
		{ID: "3", AuthorName: "Елена", Rating: 4, Text: "Хороший салон, уютная атмосфера. Рекомендую!"},
	}
}

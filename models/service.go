package models

// ServiceOffering is one entry of the salon's fixed price list. Prices are in
// kopecks.
type ServiceOffering struct {
	Name       string `json:"name"`
	PriceMinor int    `json:"priceMinor"`
}

// PriceList returns the service catalog in display order.
func PriceList() []ServiceOffering {
	return []ServiceOffering{
		{Name: "Коррекция (один ноготь)", PriceMinor: 5000},
		{Name: "Маникюр с покрытием (маникюр+покрытие+гель лак)", PriceMinor: 25000},
		{Name: "Наращивание (маникюр+укрепление+наращивание до 2 длины)", PriceMinor: 50000},
		{Name: "Наращивание (маникюр+укрепление+наращивание длина 2+)", PriceMinor: 70000},
		{Name: "Фигурки", PriceMinor: 2500},
		{Name: "Дизайн", PriceMinor: 15000},
	}
}

// FindService looks up a catalog entry by its exact name.
func FindService(name string) (ServiceOffering, bool) {
	for _, offering := range PriceList() {
		if offering.Name == name {
			return offering, true
		}
	}
	return ServiceOffering{}, false
}

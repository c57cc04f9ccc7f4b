package models

import "time"

// AuthSession records a signed-in visitor's display name so it survives
// restarts. There are no credentials here; sign-in is by name only.
type AuthSession struct {
	DisplayName string    `json:"displayName"`
	SavedAt     time.Time `json:"savedAt"`
}

package domain

import "time"

type Stadium struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	About     string    `json:"about,omitempty"`
	OwnerID   string    `json:"ownerId"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

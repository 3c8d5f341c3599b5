package domain

import (
	"fmt"
	"strings"
	"time"
)

type Shop struct {
	ID          string    `json:"id"`
	StadiumID   string    `json:"stadiumId"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Floor       string    `json:"floor,omitempty"`
	Gate        string    `json:"gate,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Admins      []string  `json:"admins"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasAdmin reports whether userID is listed as a manager of the shop.
func (s *Shop) HasAdmin(userID string) bool {
	for _, a := range s.Admins {
		if a == userID {
			return true
		}
	}
	return false
}

// ShopRef builds the stored reference path to a shop document,
// e.g. "stadiums/st1/shops/sh1".
func ShopRef(stadiumID, shopID string) string {
	return fmt.Sprintf("stadiums/%s/shops/%s", stadiumID, shopID)
}

// ParseShopRef splits a reference path back into its ids. Accepts only the
// exact stadiums/{id}/shops/{id} shape.
func ParseShopRef(ref string) (stadiumID, shopID string, ok bool) {
	parts := strings.Split(ref, "/")
	if len(parts) != 4 || parts[0] != "stadiums" || parts[2] != "shops" || parts[1] == "" || parts[3] == "" {
		return "", "", false
	}
	return parts[1], parts[3], true
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomizationOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type MenuItem struct {
	ID              string                           `json:"id"`
	ShopID          string                           `json:"shopId"`
	StadiumID       string                           `json:"stadiumId"`
	Name            string                           `json:"name"`
	Description     string                           `json:"description,omitempty"`
	Price           decimal.Decimal                  `json:"price"`
	Category        string                           `json:"category,omitempty"`
	Images          []string                         `json:"images,omitempty"`
	IsAvailable     bool                             `json:"isAvailable"`
	PreparationTime int                              `json:"preparationTime"`
	Customization   map[string][]CustomizationOption `json:"customization,omitempty"`
	Allergens       []string                         `json:"allergens,omitempty"`
	NutritionalInfo map[string]string                `json:"nutritionalInfo,omitempty"`
	CreatedAt       time.Time                        `json:"createdAt"`
	UpdatedAt       time.Time                        `json:"updatedAt"`
}

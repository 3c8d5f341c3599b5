package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus int

const (
	StatusPending   OrderStatus = 0
	StatusAccepted  OrderStatus = 1
	StatusPreparing OrderStatus = 2
	StatusReady     OrderStatus = 3
	StatusDelivered OrderStatus = 4
	StatusCancelled OrderStatus = 5
)

func (s OrderStatus) Valid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// Terminal reports whether no further kitchen work is expected.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAccepted:
		return "accepted"
	case StatusPreparing:
		return "preparing"
	case StatusReady:
		return "ready"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

type PaymentMethod int

const (
	PaymentCash PaymentMethod = 0
	PaymentCard PaymentMethod = 1
)

type CartItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}

type Order struct {
	ID            string          `json:"id"`
	StadiumID     string          `json:"stadiumId"`
	ShopID        string          `json:"shopId"`
	Restaurant    string          `json:"restaurant"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	Status        OrderStatus     `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Discount      decimal.Decimal `json:"discount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Cart          []CartItem      `json:"cart"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CartSize sums quantities across line items; order lists can be sorted by it.
func (o *Order) CartSize() int {
	n := 0
	for _, it := range o.Cart {
		n += it.Quantity
	}
	return n
}

type VenueStats struct {
	StadiumID       string          `json:"stadiumId"`
	TotalOrders     int             `json:"totalOrders"`
	ActiveOrders    int             `json:"activeOrders"`
	CompletedOrders int             `json:"completedOrders"`
	CancelledOrders int             `json:"cancelledOrders"`
	Revenue         decimal.Decimal `json:"revenue"`
	UniqueCustomers int             `json:"uniqueCustomers"`
}

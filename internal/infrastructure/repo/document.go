package repo

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"stadium-admin/internal/domain"
)

// orderDoc is the flat document shape stored for an order. Amounts travel as
// strings so the decimal representation survives the trip untouched, and
// timestamps are pointers so an absent field is distinguishable from zero.
type orderDoc struct {
	ID            string            `json:"id"`
	StadiumID     string            `json:"stadiumId"`
	ShopID        string            `json:"shopId"`
	Restaurant    string            `json:"restaurant"`
	CustomerID    string            `json:"customerId,omitempty"`
	CustomerName  string            `json:"customerName,omitempty"`
	Status        int               `json:"status"`
	Total         string            `json:"total"`
	Subtotal      string            `json:"subtotal"`
	DeliveryFee   string            `json:"deliveryFee"`
	Discount      string            `json:"discount"`
	PaymentMethod int               `json:"paymentMethod"`
	Cart          []domain.CartItem `json:"cart"`
	CreatedAt     *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time        `json:"updatedAt,omitempty"`
}

// EncodeOrder serializes an order into its document form.
func EncodeOrder(o *domain.Order) ([]byte, error) {
	doc := orderDoc{
		ID:            o.ID,
		StadiumID:     o.StadiumID,
		ShopID:        o.ShopID,
		Restaurant:    o.Restaurant,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Status:        int(o.Status),
		Total:         o.Total.String(),
		Subtotal:      o.Subtotal.String(),
		DeliveryFee:   o.DeliveryFee.String(),
		Discount:      o.Discount.String(),
		PaymentMethod: int(o.PaymentMethod),
		Cart:          o.Cart,
	}
	if !o.CreatedAt.IsZero() {
		t := o.CreatedAt
		doc.CreatedAt = &t
	}
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		doc.UpdatedAt = &t
	}
	return json.Marshal(doc)
}

// DecodeOrder rebuilds an order from its document form. Absent timestamps
// resolve to the current time, never to a zero date.
func DecodeOrder(data []byte) (*domain.Order, error) {
	var doc orderDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	o := &domain.Order{
		ID:            doc.ID,
		StadiumID:     doc.StadiumID,
		ShopID:        doc.ShopID,
		Restaurant:    doc.Restaurant,
		CustomerID:    doc.CustomerID,
		CustomerName:  doc.CustomerName,
		Status:        domain.OrderStatus(doc.Status),
		Total:         mustDecimal(doc.Total),
		Subtotal:      mustDecimal(doc.Subtotal),
		DeliveryFee:   mustDecimal(doc.DeliveryFee),
		Discount:      mustDecimal(doc.Discount),
		PaymentMethod: domain.PaymentMethod(doc.PaymentMethod),
		Cart:          doc.Cart,
	}
	now := time.Now().UTC()
	if doc.CreatedAt != nil && !doc.CreatedAt.IsZero() {
		o.CreatedAt = *doc.CreatedAt
	} else {
		o.CreatedAt = now
	}
	if doc.UpdatedAt != nil && !doc.UpdatedAt.IsZero() {
		o.UpdatedAt = *doc.UpdatedAt
	} else {
		o.UpdatedAt = now
	}
	return o, nil
}

func mustDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

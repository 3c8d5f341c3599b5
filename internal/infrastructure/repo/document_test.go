package repo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stadium-admin/internal/domain"
)

func TestOrderDocumentRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)
	updated := created.Add(10 * time.Minute)
	in := &domain.Order{
		ID:            "o1",
		StadiumID:     "st1",
		ShopID:        "sh1",
		Restaurant:    domain.ShopRef("st1", "sh1"),
		CustomerID:    "cust-9",
		CustomerName:  "Ann",
		Status:        domain.StatusPreparing,
		Total:         decimal.RequireFromString("18.50"),
		Subtotal:      decimal.RequireFromString("17.00"),
		DeliveryFee:   decimal.RequireFromString("2.50"),
		Discount:      decimal.RequireFromString("1.00"),
		PaymentMethod: domain.PaymentCard,
		Cart: []domain.CartItem{
			{Name: "burger", Price: decimal.RequireFromString("8.50"), Quantity: 2},
			{Name: "cola", Price: decimal.RequireFromString("1.75"), Quantity: 1, Image: "/assets/menu/cola.jpg"},
		},
		CreatedAt: created,
		UpdatedAt: updated,
	}

	data, err := EncodeOrder(in)
	if err != nil {
		t.Fatalf("EncodeOrder: %v", err)
	}
	out, err := DecodeOrder(data)
	if err != nil {
		t.Fatalf("DecodeOrder: %v", err)
	}

	if out.Status != in.Status {
		t.Fatalf("status = %d, want %d", out.Status, in.Status)
	}
	if !out.Total.Equal(in.Total) || !out.Subtotal.Equal(in.Subtotal) || !out.DeliveryFee.Equal(in.DeliveryFee) || !out.Discount.Equal(in.Discount) {
		t.Fatalf("amounts changed: %+v", out)
	}
	if len(out.Cart) != 2 || out.Cart[0].Name != "burger" || !out.Cart[1].Price.Equal(in.Cart[1].Price) {
		t.Fatalf("cart changed: %+v", out.Cart)
	}
	if !out.CreatedAt.Equal(created) || !out.UpdatedAt.Equal(updated) {
		t.Fatalf("timestamps changed: %v %v", out.CreatedAt, out.UpdatedAt)
	}
}

func TestDecodeOrderDefaultsAbsentTimestamps(t *testing.T) {
	doc := map[string]any{
		"id":        "o1",
		"stadiumId": "st1",
		"shopId":    "sh1",
		"status":    0,
		"total":     "10",
		"cart":      []any{map[string]any{"name": "fries", "price": "3", "quantity": 1}},
	}
	data, _ := json.Marshal(doc)

	before := time.Now().UTC()
	out, err := DecodeOrder(data)
	if err != nil {
		t.Fatalf("DecodeOrder: %v", err)
	}
	if out.CreatedAt.IsZero() || out.UpdatedAt.IsZero() {
		t.Fatal("absent timestamps decoded to zero dates")
	}
	if out.CreatedAt.Before(before.Add(-time.Minute)) {
		t.Fatalf("fallback createdAt too old: %v", out.CreatedAt)
	}
	if !out.Total.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("total = %s", out.Total)
	}
}

func TestDecodeOrderBadAmountFallsBackToZero(t *testing.T) {
	data := []byte(`{"id":"o1","total":"not-a-number"}`)
	out, err := DecodeOrder(data)
	if err != nil {
		t.Fatalf("DecodeOrder: %v", err)
	}
	if !out.Total.IsZero() {
		t.Fatalf("total = %s, want 0", out.Total)
	}
}

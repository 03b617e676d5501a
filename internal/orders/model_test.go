package orders

import (
	"encoding/json"
	"testing"
)

func TestOrderDecodeToleratesShapes(t *testing.T) {
	payload := `{
		"_id": "ord-1",
		"orderNumber": "SO-0042",
		"supplier": {"_id": "sup-1", "name": "Acme"},
		"status": "processing",
		"createdAt": "2024-03-01T10:00:00Z",
		"items": [
			{"productId": "p1", "qty": 2, "price": 10.5},
			{"productId": {"_id": "p2", "name": "Bolt"}, "quantity": "3", "unitPrice": "1.25"},
			{"product": {"_id": "p3", "title": "Nut"}, "amount": 4},
			"garbage"
		]
	}`

	var order Order
	if err := json.Unmarshal([]byte(payload), &order); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if order.ID != "ord-1" {
		t.Fatalf("expected _id to win, got %q", order.ID)
	}
	if order.OrderNumber != "SO-0042" {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
	if order.Supplier == nil || order.Supplier.Record == nil || order.Supplier.Record.Name != "Acme" {
		t.Fatalf("expected embedded supplier record, got %+v", order.Supplier)
	}
	if order.Status != StatusProcessing {
		t.Fatalf("unexpected status %q", order.Status)
	}
	if len(order.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(order.Items))
	}

	first := order.Items[0]
	if first.ProductID == nil || first.ProductID.ID != "p1" || first.ProductID.Record != nil {
		t.Fatalf("expected bare productId, got %+v", first.ProductID)
	}
	if *first.Qty != 2 || *first.Price != 10.5 {
		t.Fatalf("unexpected first item amounts: %+v", first)
	}

	second := order.Items[1]
	if second.ProductID == nil || second.ProductID.Record == nil || second.ProductID.Record.Name != "Bolt" {
		t.Fatalf("expected embedded productId, got %+v", second.ProductID)
	}
	if *second.Quantity != 3 || *second.UnitPrice != 1.25 {
		t.Fatalf("expected string numbers coerced, got %+v", second)
	}

	third := order.Items[2]
	if third.Product == nil || third.Product.Record == nil || third.Product.Record.Title != "Nut" {
		t.Fatalf("expected embedded product, got %+v", third.Product)
	}

	// a non-object element degrades to an empty item, never an error
	if name := ResolveName(order.Items[3], nil); name != "Unknown product" {
		t.Fatalf("expected garbage item to resolve as unknown, got %q", name)
	}
}

func TestOrderDecodeMissingEverything(t *testing.T) {
	var order Order
	if err := json.Unmarshal([]byte(`{"id": "x"}`), &order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "x" {
		t.Fatalf("expected id fallback, got %q", order.ID)
	}
	if order.Items != nil {
		t.Fatalf("expected no items, got %v", order.Items)
	}
}

func TestOrderDecodeNonArrayItems(t *testing.T) {
	var order Order
	if err := json.Unmarshal([]byte(`{"id": "x", "items": {"oops": true}}`), &order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 0 {
		t.Fatalf("expected non-array items to mean empty, got %v", order.Items)
	}
}

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`5`, 5},
		{`5.25`, 5.25},
		{`"7"`, 7},
		{`" 7.5 "`, 7.5},
		{`"abc"`, 0},
		{`true`, 0},
	}
	for _, tc := range cases {
		var n Number
		if err := json.Unmarshal([]byte(tc.raw), &n); err != nil {
			t.Fatalf("%s: unexpected error %v", tc.raw, err)
		}
		if float64(n) != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.raw, tc.want, float64(n))
		}
	}
}

func TestRefDecodeVariants(t *testing.T) {
	var bare Ref
	if err := json.Unmarshal([]byte(`"abc123"`), &bare); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bare.ID != "abc123" || bare.Record != nil {
		t.Fatalf("expected bare identifier, got %+v", bare)
	}

	var embedded Ref
	if err := json.Unmarshal([]byte(`{"id": "abc", "name": "Acme", "product": {"name": "Inner"}}`), &embedded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embedded.Record == nil || embedded.Record.ID != "abc" || embedded.Record.Name != "Acme" {
		t.Fatalf("expected embedded record, got %+v", embedded.Record)
	}
	if embedded.Record.Product == nil || embedded.Record.Product.Name != "Inner" {
		t.Fatalf("expected nested product, got %+v", embedded.Record.Product)
	}

	var numeric Ref
	if err := json.Unmarshal([]byte(`42`), &numeric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numeric.ID != "42" {
		t.Fatalf("expected numeric identifier kept as text, got %+v", numeric)
	}
}

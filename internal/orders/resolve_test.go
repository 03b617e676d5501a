package orders

import (
	"testing"

	"github.com/stockpilot/stockpilot/internal/products"
)

func num(v float64) *Number {
	n := Number(v)
	return &n
}

func TestResolveItemEmptyItem(t *testing.T) {
	resolved := ResolveItem(OrderItem{}, nil)
	if resolved.Name != "Unknown product" {
		t.Fatalf("expected Unknown product, got %q", resolved.Name)
	}
	if resolved.Quantity != 0 || resolved.UnitPrice != 0 || resolved.Subtotal != 0 {
		t.Fatalf("expected zero amounts, got %+v", resolved)
	}
}

func TestResolveNamePrecedence(t *testing.T) {
	index := BuildIndex([]products.Product{
		{ID: "p1", Name: "Mapped Widget"},
		{ID: "p2", Title: "Titled Widget"},
		{ID: "p3"},
	})

	cases := []struct {
		name string
		item OrderItem
		want string
	}{
		{
			name: "productName wins",
			item: OrderItem{ProductName: "Explicit", Name: "Secondary", ProductID: &Ref{ID: "p1"}},
			want: "Explicit",
		},
		{
			name: "name is second",
			item: OrderItem{Name: "Secondary", ProductID: &Ref{ID: "p1"}},
			want: "Secondary",
		},
		{
			name: "embedded product name",
			item: OrderItem{Product: &Ref{Record: &RefRecord{Name: "Embedded"}}},
			want: "Embedded",
		},
		{
			name: "embedded productId name",
			item: OrderItem{ProductID: &Ref{Record: &RefRecord{Name: "Direct"}}},
			want: "Direct",
		},
		{
			name: "nested product inside productId",
			item: OrderItem{ProductID: &Ref{Record: &RefRecord{Product: &RefRecord{Name: "Nested"}}}},
			want: "Nested",
		},
		{
			name: "bare id resolved through index",
			item: OrderItem{ProductID: &Ref{ID: "p1"}},
			want: "Mapped Widget",
		},
		{
			name: "index title fallback",
			item: OrderItem{ProductID: &Ref{ID: "p2"}},
			want: "Titled Widget",
		},
		{
			name: "indexed product without name or title",
			item: OrderItem{ProductID: &Ref{ID: "p3"}},
			want: "Unnamed product",
		},
		{
			name: "embedded product id resolved through index",
			item: OrderItem{Product: &Ref{Record: &RefRecord{ID: "p1"}}},
			want: "Mapped Widget",
		},
		{
			name: "unresolvable bare id",
			item: OrderItem{ProductID: &Ref{ID: "ghost"}},
			want: "Unknown product (ghost)",
		},
		{
			name: "unresolvable embedded productId keeps its id",
			item: OrderItem{ProductID: &Ref{Record: &RefRecord{ID: "ghost2"}}},
			want: "Unknown product (ghost2)",
		},
		{
			name: "nothing at all",
			item: OrderItem{},
			want: "Unknown product",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveName(tc.item, index)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveNameWithoutIndex(t *testing.T) {
	got := ResolveName(OrderItem{ProductID: &Ref{ID: "p1"}}, nil)
	if got != "Unknown product (p1)" {
		t.Fatalf("expected identifier fallback, got %q", got)
	}
}

func TestResolveQuantityAndPriceFallbacks(t *testing.T) {
	cases := []struct {
		name      string
		item      OrderItem
		wantQty   float64
		wantPrice float64
	}{
		{"qty and price", OrderItem{Qty: num(2), Price: num(10.5)}, 2, 10.5},
		{"quantity fallback", OrderItem{Quantity: num(3), UnitPrice: num(4)}, 3, 4},
		{"amount fallback", OrderItem{Qty: num(1), Amount: num(9.99)}, 1, 9.99},
		{"qty zero is kept, not skipped", OrderItem{Qty: num(0), Quantity: num(7), Price: num(1)}, 0, 1},
		{"all missing", OrderItem{}, 0, 0},
		{"negative passes through", OrderItem{Qty: num(-2), Price: num(5)}, -2, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolved := ResolveItem(tc.item, nil)
			if resolved.Quantity != tc.wantQty {
				t.Fatalf("quantity: expected %v, got %v", tc.wantQty, resolved.Quantity)
			}
			if resolved.UnitPrice != tc.wantPrice {
				t.Fatalf("price: expected %v, got %v", tc.wantPrice, resolved.UnitPrice)
			}
		})
	}
}

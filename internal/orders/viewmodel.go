package orders

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// displayPrinter renders amounts the way the admin UI's toLocaleString did:
// grouped thousands, two decimal places.
var displayPrinter = message.NewPrinter(language.English)

func formatAmount(v float64) string {
	return displayPrinter.Sprintf("₱%.2f", v)
}

// SupplierView is the normalized supplier display info for one order.
type SupplierView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemView is one resolved line item, with display-formatted amounts.
type ItemView struct {
	Name             string  `json:"name"`
	ProductID        string  `json:"productId,omitempty"`
	Quantity         float64 `json:"quantity"`
	UnitPrice        float64 `json:"unitPrice"`
	Subtotal         float64 `json:"subtotal"`
	UnitPriceDisplay string  `json:"unitPriceDisplay"`
	SubtotalDisplay  string  `json:"subtotalDisplay"`
}

// OrderView is the order as rendered by the list and detail screens.
type OrderView struct {
	ID                string       `json:"id"`
	OrderNumber       string       `json:"orderNumber,omitempty"`
	CustomerName      string       `json:"customerName,omitempty"`
	Status            Status       `json:"status"`
	CreatedAt         string       `json:"createdAt,omitempty"`
	Supplier          SupplierView `json:"supplier"`
	Items             []ItemView   `json:"items"`
	ItemCount         int          `json:"itemCount"`
	GrandTotal        float64      `json:"grandTotal"`
	GrandTotalDisplay string       `json:"grandTotalDisplay"`
}

// NewOrderView resolves an order against an optional product index.
func NewOrderView(o Order, index ProductIndex) OrderView {
	resolved := ResolveItems(o.Items, index)
	items := make([]ItemView, len(resolved))
	for i, item := range resolved {
		items[i] = ItemView{
			Name:             item.Name,
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			Subtotal:         item.Subtotal,
			UnitPriceDisplay: formatAmount(item.UnitPrice),
			SubtotalDisplay:  formatAmount(item.Subtotal),
		}
	}

	status := o.Status
	if status == "" {
		status = StatusPending
	}

	total := GrandTotal(resolved)
	return OrderView{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		CustomerName:      o.CustomerName,
		Status:            status,
		CreatedAt:         o.CreatedAt,
		Supplier:          supplierView(o),
		Items:             items,
		ItemCount:         len(items),
		GrandTotal:        total,
		GrandTotalDisplay: formatAmount(total),
	}
}

// supplierView normalizes the polymorphic supplier reference. Missing info
// renders as an em dash, matching the admin list screen.
func supplierView(o Order) SupplierView {
	ref := o.Supplier
	if ref.IsZero() {
		ref = o.SupplierID
	}
	if ref.IsZero() {
		return SupplierView{ID: "—", Name: "—"}
	}
	if ref.Record != nil {
		name := ref.Record.Name
		if name == "" {
			name = ref.Record.Title
		}
		if name == "" {
			name = ref.Record.ID
		}
		if name == "" {
			name = "—"
		}
		id := ref.Record.ID
		if id == "" {
			id = "—"
		}
		return SupplierView{ID: id, Name: name}
	}
	return SupplierView{ID: ref.ID, Name: ref.ID}
}

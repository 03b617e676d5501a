// Package orders renders and mutates orders fetched from the backend.
// Order items arrive in inconsistent shapes from upstream integrations, so
// decoding is deliberately lenient: unknown or malformed fields degrade to
// zero values instead of failing the whole payload.
package orders

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Status enumerates the order lifecycle. Any transition between values is
// allowed from the admin surface.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Number decodes a JSON scalar the way JavaScript's Number() coercion does:
// numbers pass through, numeric strings are parsed, anything else becomes 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Ref is a polymorphic reference field: either a bare identifier or an
// embedded record. All display logic goes through this one normalization
// instead of branching on raw JSON shapes.
type Ref struct {
	ID     string
	Record *RefRecord
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		r.ID = s
		return nil
	case '{':
		record := &RefRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return nil
		}
		r.Record = record
		return nil
	case '[':
		return nil
	default:
		// numeric or boolean identifiers from sloppy backends
		r.ID = string(data)
		return nil
	}
}

// IsZero reports whether the reference carries neither an identifier nor an
// embedded record.
func (r *Ref) IsZero() bool {
	return r == nil || (r.ID == "" && r.Record == nil)
}

// RefRecord is the embedded form of a reference. The identifier honours the
// _id-before-id convention of the backend.
type RefRecord struct {
	ID      string
	Name    string
	Title   string
	Product *RefRecord
}

func (r *RefRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	r.ID = lenientString(fields["_id"])
	if r.ID == "" {
		r.ID = lenientString(fields["id"])
	}
	r.Name = lenientString(fields["name"])
	r.Title = lenientString(fields["title"])
	if raw, ok := fields["product"]; ok {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			nested := &RefRecord{}
			if err := json.Unmarshal(trimmed, nested); err == nil {
				r.Product = nested
			}
		}
	}
	return nil
}

// OrderItem is a loosely-typed line item. Which fields are populated depends
// on the upstream source that produced the order.
type OrderItem struct {
	ProductName string
	Name        string
	Product     *Ref
	ProductID   *Ref
	Qty         *Number
	Quantity    *Number
	Price       *Number
	UnitPrice   *Number
	Amount      *Number
}

func (it *OrderItem) UnmarshalJSON(data []byte) error {
	var aux struct {
		ProductName json.RawMessage `json:"productName"`
		Name        json.RawMessage `json:"name"`
		Product     *Ref            `json:"product"`
		ProductID   *Ref            `json:"productId"`
		Qty         *Number         `json:"qty"`
		Quantity    *Number         `json:"quantity"`
		Price       *Number         `json:"price"`
		UnitPrice   *Number         `json:"unitPrice"`
		Amount      *Number         `json:"amount"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil
	}
	it.ProductName = lenientString(aux.ProductName)
	it.Name = lenientString(aux.Name)
	it.Product = aux.Product
	it.ProductID = aux.ProductID
	it.Qty = aux.Qty
	it.Quantity = aux.Quantity
	it.Price = aux.Price
	it.UnitPrice = aux.UnitPrice
	it.Amount = aux.Amount
	return nil
}

// Order is read-only from the admin surface except for status transitions
// and deletion.
type Order struct {
	ID           string
	OrderNumber  string
	Supplier     *Ref
	SupplierID   *Ref
	CustomerName string
	Status       Status
	CreatedAt    string
	Items        []OrderItem
}

// RecordID returns the opaque backend identifier.
func (o Order) RecordID() string { return o.ID }

func (o *Order) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID           json.RawMessage `json:"id"`
		AltID        json.RawMessage `json:"_id"`
		OrderNumber  json.RawMessage `json:"orderNumber"`
		Supplier     *Ref            `json:"supplier"`
		SupplierID   *Ref            `json:"supplierId"`
		CustomerName json.RawMessage `json:"customerName"`
		Status       json.RawMessage `json:"status"`
		CreatedAt    json.RawMessage `json:"createdAt"`
		Items        json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.ID = lenientString(aux.AltID)
	if o.ID == "" {
		o.ID = lenientString(aux.ID)
	}
	o.OrderNumber = lenientString(aux.OrderNumber)
	o.Supplier = aux.Supplier
	o.SupplierID = aux.SupplierID
	o.CustomerName = lenientString(aux.CustomerName)
	o.Status = Status(lenientString(aux.Status))
	o.CreatedAt = lenientString(aux.CreatedAt)
	o.Items = lenientItems(aux.Items)
	return nil
}

// lenientItems decodes an item sequence; a missing or non-array value means
// no items, and a malformed element degrades to an empty item.
func lenientItems(raw json.RawMessage) []OrderItem {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil
	}
	items := make([]OrderItem, len(elements))
	for i, element := range elements {
		_ = items[i].UnmarshalJSON(element)
	}
	return items
}

// lenientString extracts a display string from any JSON scalar; objects and
// arrays yield "".
func lenientString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return string(raw)
	}
}

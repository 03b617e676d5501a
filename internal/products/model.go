package products

import "encoding/json"

// Product represents a product record as stored by the backend.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Title string  `json:"title,omitempty"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// RecordID returns the opaque backend identifier.
func (p Product) RecordID() string { return p.ID }

// UnmarshalJSON accepts both id and Mongo-style _id keys.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = aux.AltID
	}
	return nil
}

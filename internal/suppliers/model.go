package suppliers

import "encoding/json"

// Supplier represents a supplier record as stored by the backend.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// RecordID returns the opaque backend identifier.
func (s Supplier) RecordID() string { return s.ID }

// UnmarshalJSON accepts both id and Mongo-style _id keys.
func (s *Supplier) UnmarshalJSON(data []byte) error {
	type alias Supplier
	aux := struct {
		*alias
		AltID string `json:"_id"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = aux.AltID
	}
	return nil
}

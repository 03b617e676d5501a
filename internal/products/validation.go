package products

import (
	"strings"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

func validateForm(f ProductForm) error {
	if strings.TrimSpace(f.Name) == "" {
		return &httpx.ValidationError{Field: "name", Message: "Name is required"}
	}
	if strings.TrimSpace(f.SKU) == "" {
		return &httpx.ValidationError{Field: "sku", Message: "SKU is required"}
	}
	if f.Stock < 0 {
		return &httpx.ValidationError{Field: "stock", Message: "Stock must be 0 or more"}
	}
	if f.Price < 0 {
		return &httpx.ValidationError{Field: "price", Message: "Price must be 0 or more"}
	}
	return nil
}

package products

import "strings"

// ProductForm is the payload for create and full-replace update.
type ProductForm struct {
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func (f ProductForm) normalized() ProductForm {
	f.Name = strings.TrimSpace(f.Name)
	f.SKU = strings.TrimSpace(f.SKU)
	return f
}

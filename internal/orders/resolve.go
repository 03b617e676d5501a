package orders

import (
	"github.com/stockpilot/stockpilot/internal/products"
)

// ProductIndex maps product identifiers to records. It is built once per
// order view from a full product listing and used as the lookup of last
// resort when an item carries only an identifier.
type ProductIndex map[string]products.Product

// BuildIndex indexes a product listing by identifier, skipping records
// without one.
func BuildIndex(list []products.Product) ProductIndex {
	index := make(ProductIndex, len(list))
	for _, p := range list {
		if p.ID != "" {
			index[p.ID] = p
		}
	}
	return index
}

// ResolvedItem is the display form of one order item. Resolution is total:
// missing or malformed fields degrade to explicit placeholders, never errors.
type ResolvedItem struct {
	Name      string
	ProductID string
	Quantity  float64
	UnitPrice float64
	Subtotal  float64
}

// ResolveItem resolves display name, quantity, and unit price for one item.
// index may be nil; the identifier lookup step is then skipped.
func ResolveItem(it OrderItem, index ProductIndex) ResolvedItem {
	quantity := numberOr(it.Qty, it.Quantity)
	price := numberOr(it.Price, it.UnitPrice, it.Amount)
	return ResolvedItem{
		Name:      ResolveName(it, index),
		ProductID: displayProductID(it),
		Quantity:  quantity,
		UnitPrice: price,
		Subtotal:  Subtotal(quantity, price),
	}
}

// ResolveName applies the fallback precedence for an item's display name:
// productName, name, product.name, productId.name, productId.product.name,
// then an index lookup by the derived identifier (name, title, "Unnamed
// product"), then "Unknown product (<id>)" or "Unknown product".
func ResolveName(it OrderItem, index ProductIndex) string {
	if it.ProductName != "" {
		return it.ProductName
	}
	if it.Name != "" {
		return it.Name
	}
	if it.Product != nil && it.Product.Record != nil && it.Product.Record.Name != "" {
		return it.Product.Record.Name
	}
	if it.ProductID != nil && it.ProductID.Record != nil {
		record := it.ProductID.Record
		if record.Name != "" {
			return record.Name
		}
		if record.Product != nil && record.Product.Name != "" {
			return record.Product.Name
		}
	}

	id := bareProductID(it)
	if id != "" {
		if p, ok := index[id]; ok {
			if p.Name != "" {
				return p.Name
			}
			if p.Title != "" {
				return p.Title
			}
			return "Unnamed product"
		}
	}

	if fallback := fallbackID(it, id); fallback != "" {
		return "Unknown product (" + fallback + ")"
	}
	return "Unknown product"
}

// bareProductID derives the identifier used for index lookups: productId
// when it is a bare identifier, else the embedded product's own identifier.
func bareProductID(it OrderItem) string {
	if it.ProductID != nil && it.ProductID.Record == nil && it.ProductID.ID != "" {
		return it.ProductID.ID
	}
	if it.Product != nil && it.Product.Record != nil && it.Product.Record.ID != "" {
		return it.Product.Record.ID
	}
	return ""
}

// fallbackID picks the identifier shown in the final "Unknown product"
// placeholder: an embedded productId's identifier wins over the bare one.
func fallbackID(it OrderItem, bare string) string {
	if it.ProductID != nil && it.ProductID.Record != nil {
		return it.ProductID.Record.ID
	}
	return bare
}

// displayProductID is the identifier rendered alongside the item.
func displayProductID(it OrderItem) string {
	if it.ProductID != nil {
		if it.ProductID.Record != nil {
			return it.ProductID.Record.ID
		}
		if it.ProductID.ID != "" {
			return it.ProductID.ID
		}
	}
	if it.Product != nil && it.Product.Record != nil {
		return it.Product.Record.ID
	}
	return ""
}

func numberOr(values ...*Number) float64 {
	for _, v := range values {
		if v != nil {
			return float64(*v)
		}
	}
	return 0
}

package orders

// Subtotal multiplies resolved quantity by resolved unit price. Negative or
// fractional inputs pass through unmodified; display rounding is a view
// concern.
func Subtotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// ResolveItems resolves every item in sequence order.
func ResolveItems(items []OrderItem, index ProductIndex) []ResolvedItem {
	resolved := make([]ResolvedItem, len(items))
	for i, item := range items {
		resolved[i] = ResolveItem(item, index)
	}
	return resolved
}

// GrandTotal sums subtotals in sequence order. An empty sequence yields 0.
func GrandTotal(items []ResolvedItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

package pricing

// Item is a cart line as supplied by the caller. UnitPrice is in the
// smallest currency unit; totals are always derived server-side.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type LineItem struct {
	Item
	LineTotal int64 `json:"lineTotal"`
}

type Result struct {
	Items    []LineItem
	Subtotal int64
	Tax      int64
	Total    int64
}

// Flat tax rate applied to every order, in percent.
const taxRatePercent = 8

// Compute derives line totals, subtotal, tax and total for the given items,
// preserving input order. Pure: no I/O, no clock, no randomness. Callers
// validate items first; Compute assumes unitPrice > 0 and quantity >= 1.
// All arithmetic stays in int64 — currency never touches floating point.
func Compute(items []Item) Result {
	lines := make([]LineItem, 0, len(items))

	var subtotal int64
	for _, it := range items {
		lineTotal := it.UnitPrice * it.Quantity
		subtotal += lineTotal
		lines = append(lines, LineItem{Item: it, LineTotal: lineTotal})
	}

	// Truncating integer division, never rounding.
	tax := subtotal * taxRatePercent / 100

	return Result{
		Items:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

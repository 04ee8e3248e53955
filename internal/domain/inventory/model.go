package inventory

// DefaultSize is used when an inventory line has no size cell.
const DefaultSize = "ONE SIZE"

// Line is one merchandise line item from an inventory extract. Rows
// without an item name are dropped during parsing.
type Line struct {
	ItemName    string
	ProductType string
	Size        string
	SKU         string
}

package model

import "github.com/shopspring/decimal"

// Category groups catalog items for display.
type Category string

const (
	CategoryBurgers Category = "lanches"
	CategoryDrinks  Category = "bebidas"
	CategoryCombos  Category = "combos"
)

// CatalogItem describes a purchasable menu entry. Items are loaded once at
// process start and never mutated.
type CatalogItem struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
}

// CartLine is one catalog item placed into a cart. Duplicate additions create
// duplicate lines; there is no quantity field.
type CartLine struct {
	ItemID int             `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Line converts a catalog item into a cart line.
func (i CatalogItem) Line() CartLine {
	return CartLine{ItemID: i.ID, Name: i.Name, Price: i.Price}
}

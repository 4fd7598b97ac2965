package catalog

import (
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/burgerbot/internal/domain/errors"
	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// Catalog holds the static menu. It is loaded once at process start and is
// safe for concurrent reads.
type Catalog struct {
	items      []model.CatalogItem
	byID       map[int]model.CatalogItem
	categories []model.Category
}

// New builds the catalog with the default menu.
func New() *Catalog {
	return fromItems(defaultItems())
}

func fromItems(items []model.CatalogItem) *Catalog {
	c := &Catalog{
		items: items,
		byID:  make(map[int]model.CatalogItem, len(items)),
	}
	seen := make(map[model.Category]bool)
	for _, item := range items {
		c.byID[item.ID] = item
		if !seen[item.Category] {
			seen[item.Category] = true
			c.categories = append(c.categories, item.Category)
		}
	}
	return c
}

// FindByID returns the item with the given id or ErrItemNotFound.
func (c *Catalog) FindByID(id int) (model.CatalogItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return model.CatalogItem{}, domainErrors.ErrItemNotFound
	}
	return item, nil
}

// Items returns the items of one category in display order.
func (c *Catalog) Items(category model.Category) []model.CatalogItem {
	var out []model.CatalogItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// All returns every item in display order.
func (c *Catalog) All() []model.CatalogItem {
	return append([]model.CatalogItem(nil), c.items...)
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []model.Category {
	return append([]model.Category(nil), c.categories...)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultItems() []model.CatalogItem {
	return []model.CatalogItem{
		{ID: 1, Name: "🍔 Smash Burger Clássico", Description: "180g, queijo cheddar, molho especial", Price: price("20.00"), Category: model.CategoryBurgers},
		{ID: 2, Name: "🥗 Smash! Salada", Description: "180g, mix de folhas, tomate cereja", Price: price("23.00"), Category: model.CategoryBurgers},
		{ID: 3, Name: "🥓 Salada Bacon", Description: "180g, bacon crocante, cebola caramelizada", Price: price("27.00"), Category: model.CategoryBurgers},
		{ID: 4, Name: "🍔🍔🍔 Smash!! Triple", Description: "3 hambúrgueres de 120g, triplo queijo", Price: price("28.00"), Category: model.CategoryBurgers},
		{ID: 5, Name: "🍔🥓 Smash Burger Bacon", Description: "180g, bacon, cebola crispy", Price: price("29.99"), Category: model.CategoryBurgers},
		{ID: 6, Name: "🥤 Coca-Cola 2L", Price: price("12.00"), Category: model.CategoryDrinks},
		{ID: 7, Name: "🥤 Poty Guaraná 2L", Price: price("10.00"), Category: model.CategoryDrinks},
		{ID: 8, Name: "🥤 Coca-Cola Lata", Price: price("6.00"), Category: model.CategoryDrinks},
		{ID: 9, Name: "🥤 Guaraná Lata", Price: price("6.00"), Category: model.CategoryDrinks},
		{ID: 10, Name: "🔥 Combo Família", Description: "3 Smash Clássico + 2 Coca 2L", Price: price("89.90"), Category: model.CategoryCombos},
		{ID: 11, Name: "⚡ Combo Turbo", Description: "Smash Triple + Coca Lata", Price: price("49.90"), Category: model.CategoryCombos},
	}
}

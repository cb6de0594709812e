// Package model defines the core domain entities for the storefront.
package model

import "errors"

var (
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrFlavorNotFound is returned when a flavor id does not belong to the product.
	ErrFlavorNotFound = errors.New("flavor not found in product")
	// ErrBoxSizeNotFound is returned when a box size id does not belong to the product.
	ErrBoxSizeNotFound = errors.New("box size not found in product")
	// ErrProductNotOrderable is returned when a selection references an out-of-stock product.
	ErrProductNotOrderable = errors.New("product is not orderable")
	// ErrInvalidQuantity is returned when a selection requests a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrNoFlavors indicates a product loaded without any flavor.
	ErrNoFlavors = errors.New("product must have at least one flavor")
	// ErrNoBoxSizes indicates a product loaded without any box size.
	ErrNoBoxSizes = errors.New("product must have at least one box size")
)

// Category classifies a product within the catalog.
type Category string

// Product categories available in the catalog.
const (
	CategoryCookies Category = "cookies"
	CategoryCakes   Category = "cakes"
	CategoryCandies Category = "candies"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryCookies, CategoryCakes, CategoryCandies:
		return true
	}
	return false
}

// Currency identifies the currency all prices in a catalog are denominated in.
type Currency string

// Supported currencies. A catalog instance uses exactly one.
const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// Flavor represents a flavor option of a product. Immutable once loaded.
type Flavor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Available   bool   `json:"available"`
}

// BoxSize represents a purchasable box variant of a product.
// Each box size carries its own price, independent of unit price times quantity.
type BoxSize struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Nutrition holds optional nutritional metadata for a product.
type Nutrition struct {
	Calories  int      `json:"calories,omitempty"`
	Allergens []string `json:"allergens,omitempty"`
}

// Product represents a catalog entry with its flavor and box-size variants.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	BasePrice   float64    `json:"base_price"`
	Currency    Currency   `json:"currency"`
	Flavors     []Flavor   `json:"flavors"`
	BoxSizes    []BoxSize  `json:"box_sizes"`
	Images      []string   `json:"images"`
	InStock     bool       `json:"in_stock"`
	Featured    bool       `json:"featured,omitempty"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`
}

// Validate checks the invariants required for a product to be offered
// through the ordering flow.
func (p Product) Validate() error {
	if len(p.Flavors) == 0 {
		return ErrNoFlavors
	}
	if len(p.BoxSizes) == 0 {
		return ErrNoBoxSizes
	}
	return nil
}

// Orderable reports whether the product can be added to an order.
// Out-of-stock products remain displayable but cannot be ordered.
func (p Product) Orderable() bool {
	return p.InStock && p.Validate() == nil
}

// FlavorByID returns the flavor with the given id, if it belongs to the product.
func (p Product) FlavorByID(id string) (Flavor, bool) {
	for _, f := range p.Flavors {
		if f.ID == id {
			return f, true
		}
	}
	return Flavor{}, false
}

// BoxSizeByID returns the box size with the given id, if it belongs to the product.
func (p Product) BoxSizeByID(id string) (BoxSize, bool) {
	for _, b := range p.BoxSizes {
		if b.ID == id {
			return b, true
		}
	}
	return BoxSize{}, false
}

// PriceRange returns the lowest and highest box-size price of the product,
// independent of box-size order. Products without box sizes report (0, 0).
func (p Product) PriceRange() (min, max float64) {
	if len(p.BoxSizes) == 0 {
		return 0, 0
	}
	min, max = p.BoxSizes[0].Price, p.BoxSizes[0].Price
	for _, b := range p.BoxSizes[1:] {
		if b.Price < min {
			min = b.Price
		}
		if b.Price > max {
			max = b.Price
		}
	}
	return min, max
}

// ProductSelection references a product together with the chosen flavor,
// box size, and requested quantity. Flavor and box size must belong to the
// referenced product; Resolve enforces that invariant.
type ProductSelection struct {
	ProductID string `json:"product_id"`
	FlavorID  string `json:"flavor_id"`
	BoxSizeID string `json:"box_size_id"`
	Quantity  int    `json:"quantity"`
}

// Resolve checks the selection against its product and returns the matched
// flavor and box size. Mismatched ids are a data-integrity error, never a
// valid state.
func (s ProductSelection) Resolve(p Product) (Flavor, BoxSize, error) {
	if s.Quantity <= 0 {
		return Flavor{}, BoxSize{}, ErrInvalidQuantity
	}
	flavor, ok := p.FlavorByID(s.FlavorID)
	if !ok {
		return Flavor{}, BoxSize{}, ErrFlavorNotFound
	}
	box, ok := p.BoxSizeByID(s.BoxSizeID)
	if !ok {
		return Flavor{}, BoxSize{}, ErrBoxSizeNotFound
	}
	return flavor, box, nil
}

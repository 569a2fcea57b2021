package models

// CatalogItem is a single purchasable entry in a vendor menu. Catalogs are
// static: defined once per vendor and never mutated at runtime.
type CatalogItem struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Price    float64 `json:"price" yaml:"price"`
	Category string  `json:"category" yaml:"category"`
	Station  string  `json:"station" yaml:"station"`
	Image    string  `json:"image" yaml:"image"`
}

// Vendor pairs a concession name with its menu.
type Vendor struct {
	Name  string        `json:"name" yaml:"name"`
	Items []CatalogItem `json:"items" yaml:"items"`
}

package repositories

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hector17rock/SeatServe/models"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// ErrVendorNotFound is returned when a vendor name matches no known menu.
var ErrVendorNotFound = errors.New("vendor not found")

// ErrItemNotFound is returned when an item id is absent from a vendor menu.
var ErrItemNotFound = errors.New("menu item not found")

// DefaultVendor is the concession served when no selection was made.
const DefaultVendor = "Speedee Burgers"

// CatalogRepositoryInterface supplies the static per-vendor menus. Cart and
// order code only ever reads it; menus never change at runtime.
type CatalogRepositoryInterface interface {
	Vendors() []string
	Menu(vendor string) ([]models.CatalogItem, error)
	Item(vendor, id string) (*models.CatalogItem, error)
}

// CatalogRepository holds the vendor menus in memory. Menus come from the
// built-in defaults or from a YAML file supplied at startup.
type CatalogRepository struct {
	vendors []models.Vendor
	logger  *logger.Logger
}

// defaultVendors are the demo concessions with their fixed menus.
func defaultVendors() []models.Vendor {
	return []models.Vendor{
		{
			Name: "Speedee Burgers",
			Items: []models.CatalogItem{
				{ID: "p1", Name: "Classic Burger", Price: 10.0, Category: "Food", Station: "Grill", Image: "/Images/classic-burger.png"},
				{ID: "p2", Name: "Cheese Burger", Price: 11.0, Category: "Food", Station: "Grill", Image: "/Images/cheese-burger.png"},
				{ID: "p3", Name: "Chicken Tenders", Price: 9.0, Category: "Food", Station: "Fry", Image: "/Images/chicken-tenders.png"},
				{ID: "p4", Name: "Soda Small 16oz", Price: 2.5, Category: "Drinks", Station: "Beverage", Image: "/Images/soda-small-16oz.png"},
				{ID: "p5", Name: "Soda Medium 21oz", Price: 3.0, Category: "Drinks", Station: "Beverage", Image: "/Images/soda-medium-21oz.png"},
				{ID: "p6", Name: "Soda Large 32oz", Price: 3.5, Category: "Drinks", Station: "Beverage", Image: "/Images/soda-large-32oz.png"},
				{ID: "p7", Name: "Bottled Water", Price: 2.5, Category: "Drinks", Station: "Beverage", Image: "/Images/bottled-water.png"},
				{ID: "p8", Name: "Milkshake", Price: 5.0, Category: "Drinks", Station: "Dessert", Image: "/Images/milkshake.png"},
			},
		},
		{
			Name: "Sweet Scoops",
			Items: []models.CatalogItem{
				{ID: "p1", Name: "Small Cup 1 Scoop", Price: 3.5, Category: "Ice Cream", Station: "Freezer", Image: "/Images/small-cup-1-scoop.png"},
				{ID: "p2", Name: "Medium Cup 2 Scoops", Price: 5.0, Category: "Ice Cream", Station: "Freezer", Image: "/Images/medium-cup-2-scoops.png"},
				{ID: "p3", Name: "Large Cup 3 Scoops", Price: 6.5, Category: "Ice Cream", Station: "Freezer", Image: "/Images/large-cup-3-scoops.png"},
				{ID: "p4", Name: "Cone", Price: 4.0, Category: "Ice Cream", Station: "Freezer", Image: "/Images/cone.png"},
			},
		},
	}
}

// NewCatalogRepository returns a repository serving the built-in menus.
func NewCatalogRepository(log *logger.Logger) *CatalogRepository {
	return &CatalogRepository{
		vendors: defaultVendors(),
		logger:  log.WithComponent("catalog_repository"),
	}
}

// NewCatalogRepositoryFromFile loads vendor menus from a YAML file. The file
// holds a list of vendors, each with a name and its items.
func NewCatalogRepositoryFromFile(path string, log *logger.Logger) (*CatalogRepository, error) {
	log = log.WithComponent("catalog_repository")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var vendors []models.Vendor
	if err := yaml.Unmarshal(data, &vendors); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	if len(vendors) == 0 {
		return nil, fmt.Errorf("menu file %s defines no vendors", path)
	}

	log.Info("Vendor menus loaded from file", "path", path, "vendors", len(vendors))
	return &CatalogRepository{vendors: vendors, logger: log}, nil
}

// Vendors lists the known concession names in definition order.
func (r *CatalogRepository) Vendors() []string {
	names := make([]string, 0, len(r.vendors))
	for _, v := range r.vendors {
		names = append(names, v.Name)
	}
	return names
}

// Menu returns the full menu for the named vendor.
func (r *CatalogRepository) Menu(vendor string) ([]models.CatalogItem, error) {
	for _, v := range r.vendors {
		if v.Name == vendor {
			return v.Items, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrVendorNotFound, vendor)
}

// Item looks up one menu item by id within the named vendor's menu.
func (r *CatalogRepository) Item(vendor, id string) (*models.CatalogItem, error) {
	items, err := r.Menu(vendor)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrItemNotFound, vendor, id)
}

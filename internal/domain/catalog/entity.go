package catalog

// Category is a top-level product grouping.
type Category string

const (
	CategoryOutdoor     Category = "outdoor"
	CategoryFurniture   Category = "furniture"
	CategoryLighting    Category = "lighting"
	CategoryFlooring    Category = "flooring"
	CategoryWall        Category = "wall"
	CategoryAccessories Category = "accessories"
)

// CategoryOrder is the display order of categories on the public site.
var CategoryOrder = []Category{
	CategoryOutdoor,
	CategoryFurniture,
	CategoryLighting,
	CategoryFlooring,
	CategoryWall,
	CategoryAccessories,
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryOutdoor, CategoryFurniture, CategoryLighting,
		CategoryFlooring, CategoryWall, CategoryAccessories:
		return Category(s), nil
	}
	return "", ErrInvalidCategory
}

// Status represents product availability.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOutOfStock Status = "out-of-stock"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusOutOfStock:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// MaxImages caps the ordered image list per product.
const MaxImages = 10

// Product is a catalog record. Prices are KRW without minor units.
// By convention status "out-of-stock" implies stock 0, but that is not
// enforced here.
type Product struct {
	ID               string              `json:"id" bson:"_id"`
	Name             string              `json:"name" bson:"name"`
	Category         Category            `json:"category" bson:"category"`
	Subcategory      string              `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Price            int64               `json:"price" bson:"price"`
	Stock            int                 `json:"stock" bson:"stock"`
	Status           Status              `json:"status" bson:"status"`
	Featured         bool                `json:"featured" bson:"featured"`
	Badge            string              `json:"badge,omitempty" bson:"badge,omitempty"`
	Image            string              `json:"image,omitempty" bson:"image,omitempty"`
	Images           []string            `json:"images,omitempty" bson:"images,omitempty"`
	Description      string              `json:"description,omitempty" bson:"description,omitempty"`
	ShortDescription string              `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	Size             string              `json:"size,omitempty" bson:"size,omitempty"`
	Material         string              `json:"material,omitempty" bson:"material,omitempty"`
	Features         []string            `json:"features,omitempty" bson:"features,omitempty"`
	Specs            map[string]string   `json:"specs,omitempty" bson:"specs,omitempty"`
	Options          map[string][]string `json:"options,omitempty" bson:"options,omitempty"`

	// Popularity and Updated feed the "popular" and "newest" sorts.
	Popularity int   `json:"popularity,omitempty" bson:"popularity,omitempty"`
	Updated    int64 `json:"updated,omitempty" bson:"updated,omitempty"`

	UpdatedAt string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

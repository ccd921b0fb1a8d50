package portfolio

// Category of a completed project.
type Category string

const (
	CategoryPension  Category = "pension"
	CategoryCafe     Category = "cafe"
	CategoryCaravan  Category = "caravan"
	CategoryCamping  Category = "camping"
	CategoryOutdoor  Category = "outdoor"
	CategoryLighting Category = "lighting"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPension, CategoryCafe, CategoryCaravan,
		CategoryCamping, CategoryOutdoor, CategoryLighting:
		return Category(s), nil
	}
	return "", ErrInvalidCategory
}

// Project is one portfolio entry. Products references catalog items by
// name or id; the original data is loosely typed there and stays so.
type Project struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Category    Category          `json:"category"`
	Location    string            `json:"location,omitempty"`
	Area        string            `json:"area,omitempty"`
	Duration    string            `json:"duration,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	CoverImage  string            `json:"coverImage,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Products    []string          `json:"products,omitempty"`
	Metrics     map[string]string `json:"metrics,omitempty"`
	Highlighted bool              `json:"highlighted"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	UpdatedAt   string            `json:"updatedAt,omitempty"`
}

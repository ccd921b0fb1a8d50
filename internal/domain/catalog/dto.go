package catalog

// CreateProductRequest carries the admin product form.
type CreateProductRequest struct {
	Name             string              `json:"name" validate:"required"`
	Category         string              `json:"category" validate:"required"`
	Subcategory      string              `json:"subcategory"`
	Price            *int64              `json:"price" validate:"required"`
	Stock            *int                `json:"stock" validate:"required"`
	Status           string              `json:"status"`
	Featured         bool                `json:"featured"`
	Badge            string              `json:"badge"`
	Image            string              `json:"image"`
	Images           []string            `json:"images"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"shortDescription"`
	Size             string              `json:"size"`
	Material         string              `json:"material"`
	Features         []string            `json:"features"`
	Specs            map[string]string   `json:"specs"`
	Options          map[string][]string `json:"options"`
}

// UpdateProductRequest is a shallow patch: present fields win, absent
// fields keep the stored value.
type UpdateProductRequest struct {
	Name             *string              `json:"name"`
	Category         *string              `json:"category"`
	Subcategory      *string              `json:"subcategory"`
	Price            *int64               `json:"price"`
	Stock            *int                 `json:"stock"`
	Status           *string              `json:"status"`
	Featured         *bool                `json:"featured"`
	Badge            *string              `json:"badge"`
	Image            *string              `json:"image"`
	Images           *[]string            `json:"images"`
	Description      *string              `json:"description"`
	ShortDescription *string              `json:"shortDescription"`
	Size             *string              `json:"size"`
	Material         *string              `json:"material"`
	Features         *[]string            `json:"features"`
	Specs            *map[string]string   `json:"specs"`
	Options          *map[string][]string `json:"options"`
}

// BulkEditRequest applies one action to a selected id set.
type BulkEditRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Action string   `json:"action" validate:"required,oneof=status category price stock featured"`
	Value  string   `json:"value" validate:"required"`
}

// BulkEditResponse reports how many records the action touched.
type BulkEditResponse struct {
	Updated int `json:"updated"`
}

// ListResponse wraps a product list with its count.
type ListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

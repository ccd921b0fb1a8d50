package search

import (
	"strings"

	"brightfuture/internal/domain/catalog"
	"brightfuture/internal/domain/portfolio"
)

// ProductProvider and ProjectProvider expose the current catalog and
// portfolio contents. Iteration order is the providers' display order
// and is preserved in results.
type ProductProvider interface {
	List(f catalog.Filters, sortKey string) []catalog.Product
}

type ProjectProvider interface {
	List(category portfolio.Category, tag, search string) []portfolio.Project
}

// Results groups matches by content type.
type Results struct {
	Products []catalog.Product   `json:"products"`
	Projects []portfolio.Project `json:"projects"`
	Total    int                 `json:"total"`
}

type Service struct {
	products ProductProvider
	projects ProjectProvider
}

func NewService(products ProductProvider, projects ProjectProvider) *Service {
	return &Service{products: products, projects: projects}
}

// MinQueryLength guards against one-character scans of everything.
const MinQueryLength = 2

// Search matches the query case-insensitively against product names,
// descriptions, categories and subcategories, and against project
// titles, descriptions and tags.
func (s *Service) Search(query string) *Results {
	query = strings.TrimSpace(query)
	results := &Results{Products: []catalog.Product{}, Projects: []portfolio.Project{}}
	if len([]rune(query)) < MinQueryLength {
		return results
	}
	needle := strings.ToLower(query)

	for _, p := range s.products.List(catalog.Filters{}, "") {
		if containsAny(needle, p.Name, p.Description, string(p.Category), p.Subcategory) {
			results.Products = append(results.Products, p)
		}
	}
	for _, pr := range s.projects.List("", "", "") {
		fields := []string{pr.Title, pr.Description}
		fields = append(fields, pr.Tags...)
		if containsAny(needle, fields...) {
			results.Projects = append(results.Projects, pr)
		}
	}

	results.Total = len(results.Products) + len(results.Projects)
	return results
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

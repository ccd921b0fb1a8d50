package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"brightfuture/internal/mirror"
)

// Mirror is the snapshot cache the service rewrites after mutations.
type Mirror interface {
	Put(ctx context.Context, key string, v any) error
	Get(ctx context.Context, key string, dest any) error
}

// Remote is the shared document-store copy of the catalog.
type Remote interface {
	UpsertAll(ctx context.Context, products []Product) error
	SaveCategory(ctx context.Context, category Category, products []Product) error
	SaveFeatured(ctx context.Context, featured []Product) error
	DeleteProduct(ctx context.Context, id string) error
	LoadAll(ctx context.Context) ([]Product, error)
}

// Service handles catalog business logic. Mutations apply to the
// in-memory store first; mirror and remote writes are best effort and a
// failure never rolls the mutation back.
type Service struct {
	store  *Store
	mirror Mirror
	remote Remote
}

func NewService(store *Store, mirror Mirror, remote Remote) *Service {
	return &Service{
		store:  store,
		mirror: mirror,
		remote: remote,
	}
}

// Load populates the store: remote copy first, then the mirror, then the
// seed file. With all three unavailable the seed error carries the
// remediation guidance.
func (s *Service) Load(ctx context.Context, seedPath string) error {
	if s.remote != nil {
		if products, err := s.remote.LoadAll(ctx); err == nil && len(products) > 0 {
			s.store.ReplaceAll(products)
			log.Printf("catalog: loaded %d products from remote store", len(products))
			return nil
		} else if err != nil {
			log.Printf("catalog: remote load failed, trying mirror: %v", err)
		}
	}

	var cached []Product
	if err := s.mirror.Get(ctx, mirror.KeyProducts, &cached); err == nil && len(cached) > 0 {
		s.store.ReplaceAll(cached)
		log.Printf("catalog: loaded %d products from mirror", len(cached))
		return nil
	}

	products, err := LoadSeed(seedPath)
	if err != nil {
		return err
	}
	s.store.ReplaceAll(products)
	s.sync(ctx)
	log.Printf("catalog: seeded %d products", len(products))
	return nil
}

// Import replaces the whole catalog and pushes it to the mirror and
// the remote store. Used by the seed command.
func (s *Service) Import(ctx context.Context, products []Product) error {
	s.store.ReplaceAll(products)
	s.sync(ctx)
	return nil
}

// List applies filters then the requested sort.
func (s *Service) List(f Filters, sortKey string) []Product {
	return Sort(Filter(s.store.List(), f), sortKey)
}

func (s *Service) Get(id string) (Product, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *Service) Featured() []Product {
	return s.store.Featured()
}

func (s *Service) Create(ctx context.Context, req *CreateProductRequest) (Product, error) {
	category, err := ParseCategory(req.Category)
	if err != nil {
		return Product{}, err
	}

	status := StatusActive
	if req.Status != "" {
		if status, err = ParseStatus(req.Status); err != nil {
			return Product{}, err
		}
	}

	if *req.Price < 0 {
		return Product{}, ErrInvalidPrice
	}
	if *req.Stock < 0 {
		return Product{}, ErrInvalidStock
	}
	if len(req.Images) > MaxImages {
		return Product{}, ErrTooManyImages
	}

	now := time.Now()
	p := Product{
		ID:               fmt.Sprintf("product-%d", now.UnixMilli()),
		Name:             req.Name,
		Category:         category,
		Subcategory:      req.Subcategory,
		Price:            *req.Price,
		Stock:            *req.Stock,
		Status:           status,
		Featured:         req.Featured,
		Badge:            req.Badge,
		Image:            req.Image,
		Images:           req.Images,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Size:             req.Size,
		Material:         req.Material,
		Features:         req.Features,
		Specs:            req.Specs,
		Options:          req.Options,
		Updated:          now.UnixMilli(),
		UpdatedAt:        now.UTC().Format(time.RFC3339),
	}

	s.store.Insert(p)
	s.sync(ctx)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateProductRequest) (Product, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return Product{}, ErrProductNotFound
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		category, err := ParseCategory(*req.Category)
		if err != nil {
			return Product{}, err
		}
		p.Category = category
	}
	if req.Subcategory != nil {
		p.Subcategory = *req.Subcategory
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return Product{}, ErrInvalidPrice
		}
		p.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return Product{}, ErrInvalidStock
		}
		p.Stock = *req.Stock
	}
	if req.Status != nil {
		status, err := ParseStatus(*req.Status)
		if err != nil {
			return Product{}, err
		}
		p.Status = status
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Badge != nil {
		p.Badge = *req.Badge
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Images != nil {
		if len(*req.Images) > MaxImages {
			return Product{}, ErrTooManyImages
		}
		p.Images = *req.Images
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ShortDescription != nil {
		p.ShortDescription = *req.ShortDescription
	}
	if req.Size != nil {
		p.Size = *req.Size
	}
	if req.Material != nil {
		p.Material = *req.Material
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.Specs != nil {
		p.Specs = *req.Specs
	}
	if req.Options != nil {
		p.Options = *req.Options
	}

	now := time.Now()
	p.Updated = now.UnixMilli()
	p.UpdatedAt = now.UTC().Format(time.RFC3339)

	s.store.Save(p)
	s.sync(ctx)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.store.Delete(id) {
		return ErrProductNotFound
	}

	if s.remote != nil {
		if err := s.remote.DeleteProduct(ctx, id); err != nil {
			log.Printf("catalog: remote delete %s failed: %v", id, err)
		}
	}
	s.sync(ctx)
	return nil
}

func (s *Service) ToggleFeatured(ctx context.Context, id string) (Product, error) {
	p, ok := s.store.ToggleFeatured(id)
	if !ok {
		return Product{}, ErrProductNotFound
	}
	s.sync(ctx)
	return p, nil
}

// BulkEdit applies one action to the selected set and reports the count
// of updated records.
func (s *Service) BulkEdit(ctx context.Context, req *BulkEditRequest) (int, error) {
	if len(req.IDs) == 0 {
		return 0, ErrNoSelection
	}

	apply, err := buildBulkApply(req.Action, req.Value)
	if err != nil {
		return 0, err
	}

	updated := s.store.BulkEdit(req.IDs, apply)
	if updated > 0 {
		s.sync(ctx)
	}
	return updated, nil
}

// sync rewrites the mirror snapshots and the remote copy. Failures are
// logged, never returned: the in-memory mutation already happened.
func (s *Service) sync(ctx context.Context) {
	all := s.store.List()
	featured := s.store.Featured()
	byCategory := s.store.ByCategory()

	if err := s.mirror.Put(ctx, mirror.KeyProducts, all); err != nil {
		log.Printf("catalog: mirror products write failed: %v", err)
	}
	if err := s.mirror.Put(ctx, mirror.KeyFeatured, featured); err != nil {
		log.Printf("catalog: mirror featured write failed: %v", err)
	}
	if err := s.mirror.Put(ctx, mirror.KeyCategorized, byCategory); err != nil {
		log.Printf("catalog: mirror categorized write failed: %v", err)
	}

	if s.remote == nil {
		return
	}
	if err := s.remote.UpsertAll(ctx, all); err != nil {
		log.Printf("catalog: remote upsert failed: %v", err)
	}
	if err := s.remote.SaveFeatured(ctx, featured); err != nil {
		log.Printf("catalog: remote featured write failed: %v", err)
	}
	for category, products := range byCategory {
		if err := s.remote.SaveCategory(ctx, category, products); err != nil {
			log.Printf("catalog: remote category %s write failed: %v", category, err)
		}
	}
}

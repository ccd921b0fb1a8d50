package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"brightfuture/internal/mirror"
)

// Mirror is the snapshot cache rewritten after every mutation.
type Mirror interface {
	Put(ctx context.Context, key string, v any) error
	Get(ctx context.Context, key string, dest any) error
}

type Service struct {
	store  *Store
	mirror Mirror
}

func NewService(store *Store, mirror Mirror) *Service {
	return &Service{store: store, mirror: mirror}
}

type seedFile struct {
	Projects []Project `json:"projects"`
}

// Load populates the store from the mirror, falling back to the seed
// file. An empty portfolio is not an error.
func (s *Service) Load(ctx context.Context, seedPath string) error {
	var cached []Project
	if err := s.mirror.Get(ctx, mirror.KeyPortfolio, &cached); err == nil && len(cached) > 0 {
		s.store.ReplaceAll(cached)
		log.Printf("portfolio: loaded %d projects from mirror", len(cached))
		return nil
	}

	raw, err := os.ReadFile(seedPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("portfolio: no seed at %s, starting empty", seedPath)
			return nil
		}
		return fmt.Errorf("read seed %s: %w", seedPath, err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed %s: %w", seedPath, err)
	}

	s.store.ReplaceAll(seed.Projects)
	s.sync(ctx)
	log.Printf("portfolio: seeded %d projects", len(seed.Projects))
	return nil
}

// Import replaces the portfolio from a seed file regardless of what
// the mirror holds. Used by the seed command.
func (s *Service) Import(ctx context.Context, seedPath string) error {
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", seedPath, err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed %s: %w", seedPath, err)
	}

	s.store.ReplaceAll(seed.Projects)
	s.sync(ctx)
	return nil
}

// List filters by category, tag and a case-insensitive search term over
// title and description, preserving relative order.
func (s *Service) List(category Category, tag, search string) []Project {
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]Project, 0)
	for _, p := range s.store.List() {
		if category != "" && p.Category != category {
			continue
		}
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Highlighted returns the highlighted projects in original order.
func (s *Service) Highlighted() []Project {
	out := make([]Project, 0)
	for _, p := range s.store.List() {
		if p.Highlighted {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) Get(id string) (Project, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req *CreateProjectRequest) (Project, error) {
	category, err := ParseCategory(req.Category)
	if err != nil {
		return Project{}, err
	}

	now := time.Now()
	p := Project{
		ID:          fmt.Sprintf("project-%d", now.UnixMilli()),
		Title:       req.Title,
		Category:    category,
		Location:    req.Location,
		Area:        req.Area,
		Duration:    req.Duration,
		Description: req.Description,
		Tags:        req.Tags,
		CoverImage:  req.CoverImage,
		Images:      req.Images,
		Products:    req.Products,
		Metrics:     req.Metrics,
		Highlighted: req.Highlighted,
		CreatedAt:   now.UTC().Format(time.RFC3339),
		UpdatedAt:   now.UTC().Format(time.RFC3339),
	}

	s.store.Insert(p)
	s.sync(ctx)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateProjectRequest) (Project, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return Project{}, ErrProjectNotFound
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Category != nil {
		category, err := ParseCategory(*req.Category)
		if err != nil {
			return Project{}, err
		}
		p.Category = category
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Area != nil {
		p.Area = *req.Area
	}
	if req.Duration != nil {
		p.Duration = *req.Duration
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.CoverImage != nil {
		p.CoverImage = *req.CoverImage
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.Products != nil {
		p.Products = *req.Products
	}
	if req.Metrics != nil {
		p.Metrics = *req.Metrics
	}
	if req.Highlighted != nil {
		p.Highlighted = *req.Highlighted
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	s.store.Save(p)
	s.sync(ctx)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.store.Delete(id) {
		return ErrProjectNotFound
	}
	s.sync(ctx)
	return nil
}

func (s *Service) sync(ctx context.Context) {
	if err := s.mirror.Put(ctx, mirror.KeyPortfolio, s.store.List()); err != nil {
		log.Printf("portfolio: mirror write failed: %v", err)
	}
}

func hasTag(p Project, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

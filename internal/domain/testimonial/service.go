package testimonial

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"brightfuture/internal/mirror"
)

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

// Load restores the mirror snapshot. Starting empty is fine.
func (s *Service) Load(ctx context.Context) {
	var cached []Testimonial
	if err := s.mirror.Get(ctx, mirror.KeyTestimonials, &cached); err == nil && len(cached) > 0 {
		s.store.ReplaceAll(cached)
		log.Printf("testimonial: loaded %d entries from mirror", len(cached))
	}
}

// Approved is the public view: approved entries in display order.
func (s *Service) Approved() []Testimonial {
	return s.store.Approved()
}

// List is the admin view with optional status/project/search filters.
func (s *Service) List(status Status, projectID, search string) []Testimonial {
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]Testimonial, 0)
	for _, t := range s.store.List() {
		if status != "" && t.Status != status {
			continue
		}
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(t.AuthorName), term) &&
			!strings.Contains(strings.ToLower(t.Content), term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Service) Get(id string) (Testimonial, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return Testimonial{}, ErrTestimonialNotFound
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, req *CreateTestimonialRequest) (Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return Testimonial{}, ErrInvalidRating
	}

	status := StatusPending
	if req.Status != "" {
		parsed, err := ParseStatus(req.Status)
		if err != nil {
			return Testimonial{}, err
		}
		status = parsed
	}

	now := time.Now()
	t := Testimonial{
		ID:          fmt.Sprintf("testimonial-%d", now.UnixMilli()),
		AuthorName:  req.AuthorName,
		AuthorTitle: req.AuthorTitle,
		Content:     req.Content,
		Rating:      req.Rating,
		ProjectID:   req.ProjectID,
		Status:      status,
		Order:       req.Order,
		CreatedAt:   now.UTC().Format(time.RFC3339),
		UpdatedAt:   now.UTC().Format(time.RFC3339),
	}

	s.store.Insert(t)
	s.sync(ctx)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateTestimonialRequest) (Testimonial, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return Testimonial{}, ErrTestimonialNotFound
	}

	if req.AuthorName != nil {
		t.AuthorName = *req.AuthorName
	}
	if req.AuthorTitle != nil {
		t.AuthorTitle = *req.AuthorTitle
	}
	if req.Content != nil {
		t.Content = *req.Content
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return Testimonial{}, ErrInvalidRating
		}
		t.Rating = *req.Rating
	}
	if req.ProjectID != nil {
		t.ProjectID = *req.ProjectID
	}
	if req.Status != nil {
		status, err := ParseStatus(*req.Status)
		if err != nil {
			return Testimonial{}, err
		}
		t.Status = status
	}
	if req.Order != nil {
		t.Order = *req.Order
	}
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	s.store.Save(t)
	s.sync(ctx)
	return t, nil
}

// SetStatus approves or rejects one testimonial.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Testimonial, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return Testimonial{}, ErrTestimonialNotFound
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.store.Save(t)
	s.sync(ctx)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.store.Delete(id) {
		return ErrTestimonialNotFound
	}
	s.sync(ctx)
	return nil
}

func (s *Service) sync(ctx context.Context) {
	if err := s.mirror.Put(ctx, mirror.KeyTestimonials, s.store.List()); err != nil {
		log.Printf("testimonial: mirror write failed: %v", err)
	}
}

package lead

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Capture runs the inquiry pipeline: relay first, then the durable
// write, then best-effort fan-out. A relay rejection aborts before
// anything is stored; a store failure is terminal and surfaced even
// though the relay already accepted the submission.
func (s *Service) Capture(ctx context.Context, form map[string]string, page string) (*Lead, error) {
	if !s.notifier.RelayConfigured() {
		return nil, ErrRelayNotConfigured
	}

	lead := Normalize(form)
	if lead.Name == "" {
		return nil, ErrMissingName
	}
	if lead.Email == "" && lead.Phone == "" {
		return nil, ErrMissingContact
	}

	now := time.Now().UTC().Format(time.RFC3339)
	lead.Page = page
	lead.Status = StatusNew
	lead.Read = false
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if err := s.notifier.SubmitRelay(ctx, lead); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRelayRejected, err)
	}

	if err := s.repo.Insert(ctx, &lead); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.notifier.SendCRM(ctx, lead); err != nil {
			log.Printf("lead: crm delivery failed for %s: %v", lead.ID, err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.notifier.SendWebhook(ctx, lead); err != nil {
			log.Printf("lead: webhook delivery failed for %s: %v", lead.ID, err)
		}
	}()
	wg.Wait()

	return &lead, nil
}

// List returns leads newest-first. Search matches name, email, phone,
// product and message, case-insensitively.
func (s *Service) List(ctx context.Context, filters Filters) ([]Lead, error) {
	leads, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if filters.Search == "" {
		return leads, nil
	}

	needle := strings.ToLower(filters.Search)
	matched := make([]Lead, 0, len(leads))
	for _, l := range leads {
		haystack := strings.ToLower(strings.Join([]string{l.Name, l.Email, l.Phone, l.Product, l.Message}, " "))
		if strings.Contains(haystack, needle) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Lead, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status, notes string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.UpdateStatus(ctx, id, status, notes, now)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.MarkRead(ctx, id, now)
}

// Delete removes the lead from the remote store. The remote delete
// runs first and its failure is surfaced; nothing is reported removed
// until the store has confirmed.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

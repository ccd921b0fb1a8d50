package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Notifier fans a captured lead out to the external endpoints wired in
// configuration: the form relay, an optional CRM, and an optional chat
// webhook.
type Notifier interface {
	RelayConfigured() bool
	SubmitRelay(ctx context.Context, lead Lead) error
	SendCRM(ctx context.Context, lead Lead) error
	SendWebhook(ctx context.Context, lead Lead) error
}

// Relay posts leads to the configured HTTP endpoints. Zero-value
// endpoints mean the corresponding delivery is skipped.
type Relay struct {
	Endpoint        string
	CRMEndpoint     string
	WebhookEndpoint string

	client *http.Client
}

func NewRelay(endpoint, crmEndpoint, webhookEndpoint string) *Relay {
	return &Relay{
		Endpoint:        endpoint,
		CRMEndpoint:     crmEndpoint,
		WebhookEndpoint: webhookEndpoint,
		client:          &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Relay) RelayConfigured() bool {
	return r.Endpoint != ""
}

// SubmitRelay delivers the lead to the form relay as a classic
// form-encoded POST. Any non-2xx response is a rejection.
func (r *Relay) SubmitRelay(ctx context.Context, lead Lead) error {
	values := url.Values{}
	setIf := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	setIf("name", lead.Name)
	setIf("email", lead.Email)
	setIf("phone", lead.Phone)
	setIf("projectType", lead.ProjectType)
	setIf("product", lead.Product)
	setIf("budget", lead.Budget)
	setIf("message", lead.Message)
	setIf("page", lead.Page)
	for key, value := range lead.Extra {
		setIf(key, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return r.do(req)
}

// SendCRM pushes the normalized lead to the CRM intake as JSON.
func (r *Relay) SendCRM(ctx context.Context, lead Lead) error {
	if r.CRMEndpoint == "" {
		return nil
	}
	body, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.CRMEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return r.do(req)
}

// SendWebhook posts a human-readable summary plus the full payload to
// the chat webhook.
func (r *Relay) SendWebhook(ctx context.Context, lead Lead) error {
	if r.WebhookEndpoint == "" {
		return nil
	}
	summary := fmt.Sprintf("새 문의: %s / %s / %s / %s", lead.Name, lead.Phone, lead.ProjectType, lead.Budget)
	body, err := json.Marshal(map[string]any{
		"text":    summary,
		"payload": lead,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.WebhookEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return r.do(req)
}

func (r *Relay) do(req *http.Request) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s responded %d", req.URL.Host, resp.StatusCode)
	}
	return nil
}

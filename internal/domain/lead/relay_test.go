package lead

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRelayPostsFormEncoded(t *testing.T) {
	var gotContentType string
	var gotName, gotPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotName = r.PostFormValue("name")
		gotPage = r.PostFormValue("page")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := NewRelay(server.URL, "", "")
	err := relay.SubmitRelay(context.Background(), Lead{Name: "김민수", Phone: "010-1234-5678", Page: "contact"})

	assert.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "김민수", gotName)
	assert.Equal(t, "contact", gotPage)
}

func TestSubmitRelayRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	relay := NewRelay(server.URL, "", "")
	err := relay.SubmitRelay(context.Background(), Lead{Name: "김민수"})

	assert.Error(t, err)
}

func TestSendWebhookIncludesSummaryAndPayload(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := NewRelay("https://relay.example.com", "", server.URL)
	err := relay.SendWebhook(context.Background(), Lead{Name: "김민수", Phone: "010-1234-5678", ProjectType: "cafe"})

	assert.NoError(t, err)
	assert.Contains(t, string(body), "새 문의")
	assert.Contains(t, string(body), "payload")
}

func TestSendersSkipUnconfiguredEndpoints(t *testing.T) {
	relay := NewRelay("https://relay.example.com", "", "")

	assert.NoError(t, relay.SendCRM(context.Background(), Lead{Name: "김민수"}))
	assert.NoError(t, relay.SendWebhook(context.Background(), Lead{Name: "김민수"}))
	assert.True(t, relay.RelayConfigured())
	assert.False(t, NewRelay("", "", "").RelayConfigured())
}

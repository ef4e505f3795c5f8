package mistral

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/provider"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func completionResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func textRequest() provider.Request {
	return provider.Request{
		Class: classify.ClassTextPDF,
		Role:  constants.RoleIdentity,
		Text:  "REGISTRO GERAL Maria Silva CPF 123.456.789-01",
	}
}

func TestExtractParsesCompletion(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(completionResponse(`{"name":"Maria Silva","cpf":"12345678901"}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "mistral-small-latest"}, discard())

	res, err := c.Extract(context.Background(), textRequest())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Provider != provider.TextProvider {
		t.Errorf("provider = %s, want %s", res.Provider, provider.TextProvider)
	}
	if res.Payload["name"] != "Maria Silva" || res.Payload["cpf"] != "12345678901" {
		t.Errorf("payload = %v", res.Payload)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotBody["model"] != "mistral-small-latest" {
		t.Errorf("model in body = %v", gotBody["model"])
	}
}

func TestExtractToleratesCodeFence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(completionResponse("```json\n{\"name\":\"Maria Silva\"}\n```")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discard())
	res, err := c.Extract(context.Background(), textRequest())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Payload["name"] != "Maria Silva" {
		t.Errorf("payload = %v", res.Payload)
	}
}

func TestExtractRequiresText(t *testing.T) {
	c := NewClient(Config{APIKey: "k", BaseURL: "http://unused"}, discard())
	_, err := c.Extract(context.Background(), provider.Request{Role: constants.RoleIdentity})
	if err == nil {
		t.Fatal("request without text accepted")
	}
}

func TestExtractClassifiesHTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, common.ErrProviderAuth},
		{http.StatusForbidden, common.ErrProviderAuth},
		{http.StatusTooManyRequests, common.ErrRateLimited},
		{http.StatusInternalServerError, common.ErrProviderUnavailable},
	}
	for _, tc := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discard())
		_, err := c.Extract(context.Background(), textRequest())
		srv.Close()
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestExtractRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discard())
	if _, err := c.Extract(context.Background(), textRequest()); err == nil {
		t.Fatal("empty choices accepted")
	}
}

func TestExtractRejectsNonStringKnownKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(completionResponse(`{"name":"Maria Silva","rg":{"number":"123"}}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discard())
	res, err := c.Extract(context.Background(), textRequest())
	// The nested rg object is uncoercible and gets dropped by
	// sanitization, so the remaining payload validates.
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if _, ok := res.Payload["rg"]; ok {
		t.Error("uncoercible value survived sanitization")
	}
}

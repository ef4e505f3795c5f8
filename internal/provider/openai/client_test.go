package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/provider"
	"github.com/pcaldeira/contractdraft/internal/raster"
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

func TestExtractSendsPagesAsDataURLs(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(completionResponse(`{"name":"Maria Silva"}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Model: "gpt-4o"}, discard())
	res, err := c.Extract(context.Background(), provider.Request{
		Class: classify.ClassImagePDF,
		Role:  constants.RoleIdentity,
		Pages: []raster.Page{
			{Index: 1, PNG: []byte("page-one")},
			{Index: 2, PNG: []byte("page-two")},
		},
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Provider != provider.VisionProvider {
		t.Errorf("provider = %s, want %s", res.Provider, provider.VisionProvider)
	}
	if res.Payload["name"] != "Maria Silva" {
		t.Errorf("payload = %v", res.Payload)
	}

	msgs := gotBody["messages"].([]any)
	content := msgs[0].(map[string]any)["content"].([]any)
	if len(content) != 3 { // prompt + two pages
		t.Fatalf("content parts = %d, want 3", len(content))
	}
	for i, part := range content[1:] {
		m := part.(map[string]any)
		if m["type"] != "image_url" {
			t.Errorf("part %d type = %v", i+1, m["type"])
			continue
		}
		u := m["image_url"].(map[string]any)["url"].(string)
		if !strings.HasPrefix(u, "data:image/png;base64,") {
			t.Errorf("part %d url prefix = %q", i+1, u[:min(len(u), 30)])
		}
	}
	if gotBody["response_format"].(map[string]any)["type"] != "json_object" {
		t.Error("response_format not pinned to json_object")
	}
}

func TestExtractNativeImageUsesExtensionMIME(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(completionResponse(`{"name":"Maria Silva"}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discard())
	_, err := c.Extract(context.Background(), provider.Request{
		Class:    classify.ClassImageRaster,
		Role:     constants.RoleIdentity,
		Image:    []byte("jpeg-bytes"),
		ImageExt: ".jpg",
	})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	msgs := gotBody["messages"].([]any)
	content := msgs[0].(map[string]any)["content"].([]any)
	u := content[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
	if !strings.HasPrefix(u, "data:image/jpeg;base64,") {
		t.Errorf("url prefix = %q", u[:min(len(u), 30)])
	}
}

func TestExtractRequiresImageContent(t *testing.T) {
	c := NewClient(Config{APIKey: "k", BaseURL: "http://unused"}, discard())
	_, err := c.Extract(context.Background(), provider.Request{
		Class: classify.ClassTextPDF,
		Role:  constants.RoleIdentity,
		Text:  "bare text",
	})
	if err == nil {
		t.Fatal("text-only request accepted by the vision client")
	}
}

func TestExtractRejectsUnreadableContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(completionResponse("I cannot read this document.")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, discard())
	_, err := c.Extract(context.Background(), provider.Request{
		Class:    classify.ClassImageRaster,
		Role:     constants.RoleIdentity,
		Image:    []byte("x"),
		ImageExt: ".png",
	})
	if err == nil {
		t.Fatal("prose-only completion accepted")
	}
}

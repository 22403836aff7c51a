package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"go.uber.org/zap"
)

func profilePage(imageURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head><meta property="og:image" content="%s"/></head><body></body></html>`, imageURL)
	}
}

func TestEnrichFillsOnlyMissingImages(t *testing.T) {
	server := httptest.NewServer(profilePage("https://img.example/found.jpg"))
	defer server.Close()

	profiles := []*domain.Profile{
		{Name: "Jane Doe", Link: server.URL, Image: ""},
		{Name: "John Smith", Link: server.URL, Image: "https://img.example/existing.jpg"},
	}

	enricher := NewImageEnricher(zap.NewNop())
	resolved := enricher.Enrich(context.Background(), profiles)

	if resolved != 1 {
		t.Fatalf("expected 1 resolved image, got %d", resolved)
	}
	if profiles[0].Image != "https://img.example/found.jpg" {
		t.Fatalf("expected fetched image, got %q", profiles[0].Image)
	}
	if profiles[1].Image != "https://img.example/existing.jpg" {
		t.Fatalf("expected existing image untouched, got %q", profiles[1].Image)
	}
}

func TestEnrichLeavesProfileUntouchedOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer server.Close()

	profiles := []*domain.Profile{
		{Name: "Jane Doe", Link: server.URL},
	}

	enricher := NewImageEnricher(zap.NewNop())
	resolved := enricher.Enrich(context.Background(), profiles)

	if resolved != 0 {
		t.Fatalf("expected no resolutions on failure, got %d", resolved)
	}
	if profiles[0].Image != "" {
		t.Fatalf("expected image untouched, got %q", profiles[0].Image)
	}
}

func TestEnrichSkipsPagesWithoutOGImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>nothing here</title></head></html>`)
	}))
	defer server.Close()

	profiles := []*domain.Profile{
		{Name: "Jane Doe", Link: server.URL},
	}

	enricher := NewImageEnricher(zap.NewNop())
	if resolved := enricher.Enrich(context.Background(), profiles); resolved != 0 {
		t.Fatalf("expected no resolutions without og:image, got %d", resolved)
	}
}

func TestEnrichNothingToDo(t *testing.T) {
	profiles := []*domain.Profile{
		{Name: "Jane Doe", Link: "https://example.invalid", Image: "https://img.example/x.jpg"},
		{Name: "No Link"},
	}

	enricher := NewImageEnricher(zap.NewNop())
	if resolved := enricher.Enrich(context.Background(), profiles); resolved != 0 {
		t.Fatalf("expected nothing to resolve, got %d", resolved)
	}
}

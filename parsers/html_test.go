package parsers

import (
	"testing"
)

func TestExtractTitleFromHtml(t *testing.T) {
	html := `<html><head><title>Fallback</title></head><body><h1>  My First Post </h1><p>hello</p></body></html>`
	title, err := ExtractTitleFromHtml(html)
	if err != nil {
		t.Fatalf("Failed to extract title: %v", err)
	}
	if title != "My First Post" {
		t.Errorf("Expected title %q, got %q", "My First Post", title)
	}

	html = `<html><head><title>Fallback</title></head><body><p>no heading here</p></body></html>`
	title, err = ExtractTitleFromHtml(html)
	if err != nil {
		t.Fatalf("Failed to extract title: %v", err)
	}
	if title != "Fallback" {
		t.Errorf("Expected title %q, got %q", "Fallback", title)
	}

	title, err = ExtractTitleFromHtml("<p>plain</p>")
	if err != nil {
		t.Fatalf("Failed to extract title: %v", err)
	}
	if title != "" {
		t.Errorf("Expected an empty title, got %q", title)
	}
}

func TestExtractCanonicalLink(t *testing.T) {
	html := `<html><head><link rel="canonical" href="https://medium.com/@hazelvis/abc123"></head><body></body></html>`
	link, err := ExtractCanonicalLink(html)
	if err != nil {
		t.Fatalf("Failed to extract canonical link: %v", err)
	}
	if link != "https://medium.com/@hazelvis/abc123" {
		t.Errorf("Expected canonical link %q, got %q", "https://medium.com/@hazelvis/abc123", link)
	}

	link, err = ExtractCanonicalLink("<p>no links</p>")
	if err != nil {
		t.Fatalf("Failed to extract canonical link: %v", err)
	}
	if link != "" {
		t.Errorf("Expected an empty canonical link, got %q", link)
	}
}

package medium

import (
	"testing"

	"github.com/hazelvis/Medium-Publisher-Logic/configs"
)

func TestResolveCreateBodyAppliesDefaults(t *testing.T) {
	client, _ := newTestClient(t, &configs.Config{
		AccessToken:          "token",
		DefaultPublishStatus: "draft",
		DefaultLicense:       "cc-40-by",
	})

	body, err := client.resolveCreateBody(&CreatePostRequest{
		Title:   "T",
		Content: "hello",
	})
	if err != nil {
		t.Fatalf("Failed to resolve create body: %v", err)
	}

	if body.ContentFormat != "markdown" {
		t.Errorf("Expected the default content format, got %q", body.ContentFormat)
	}
	if body.PublishStatus != "draft" {
		t.Errorf("Expected the configured publish status, got %q", body.PublishStatus)
	}
	if body.License != "cc-40-by" {
		t.Errorf("Expected the configured license, got %q", body.License)
	}
}

func TestResolveCreateBodyRejectsInvalidEnums(t *testing.T) {
	client, _ := newTestClient(t, &configs.Config{AccessToken: "token"})

	testCases := []*CreatePostRequest{
		{Title: "T", Content: "c", ContentFormat: "rst"},
		{Title: "T", Content: "c", PublishStatus: "hidden"},
		{Title: "T", Content: "c", License: "gpl-3.0"},
	}
	for _, req := range testCases {
		if _, err := client.resolveCreateBody(req); err == nil {
			t.Errorf("Expected an error for %+v, got nil", req)
		}
	}
}

func TestResolveCreateBodyDedupesAndCapsTags(t *testing.T) {
	client, _ := newTestClient(t, &configs.Config{AccessToken: "token"})

	body, err := client.resolveCreateBody(&CreatePostRequest{
		Title:   "T",
		Content: "c",
		Tags:    []string{"go", "go", "web", "api", "http", "json", "grpc"},
	})
	if err != nil {
		t.Fatalf("Failed to resolve create body: %v", err)
	}

	if len(body.Tags) != 5 {
		t.Fatalf("Expected the tags to be capped at 5, got %d", len(body.Tags))
	}
	if body.Tags[0] != "go" || body.Tags[1] != "web" {
		t.Errorf("Expected de-duplicated tags in order, got %v", body.Tags)
	}
}

func TestResolveCreateBodyExtractsFromHtmlContent(t *testing.T) {
	client, _ := newTestClient(t, &configs.Config{AccessToken: "token"})

	body, err := client.resolveCreateBody(&CreatePostRequest{
		Content:       `<html><head><link rel="canonical" href="https://blog.example.com/post"></head><body><h1>From Heading</h1></body></html>`,
		ContentFormat: "html",
	})
	if err != nil {
		t.Fatalf("Failed to resolve create body: %v", err)
	}

	if body.Title != "From Heading" {
		t.Errorf("Expected the title to be extracted from the HTML, got %q", body.Title)
	}
	if body.CanonicalUrl != "https://blog.example.com/post" {
		t.Errorf("Expected the canonical link to be extracted from the HTML, got %q", body.CanonicalUrl)
	}
}

func TestResolveCreateBodyRequiresTitleForMarkdown(t *testing.T) {
	client, _ := newTestClient(t, &configs.Config{AccessToken: "token"})

	if _, err := client.resolveCreateBody(&CreatePostRequest{Content: "no title"}); err == nil {
		t.Error("Expected an error for a markdown post without a title, got nil")
	}
}

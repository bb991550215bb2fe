package medium

import (
	"time"
)

// User is the profile returned by the "me" endpoint.
type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Url      string `json:"url"`
	ImageUrl string `json:"imageUrl"`
}

type Publication struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Url         string `json:"url"`
	ImageUrl    string `json:"imageUrl"`
}

type Contributor struct {
	PublicationId string `json:"publicationId"`
	UserId        string `json:"userId"`
	Role          string `json:"role"`
}

// Post is returned by the create operations.
type Post struct {
	Id            string   `json:"id"`
	Title         string   `json:"title"`
	AuthorId      string   `json:"authorId"`
	Url           string   `json:"url"`
	CanonicalUrl  string   `json:"canonicalUrl"`
	PublishStatus string   `json:"publishStatus"`
	PublishedAt   int64    `json:"publishedAt"`
	License       string   `json:"license"`
	LicenseUrl    string   `json:"licenseUrl"`
	Tags          []string `json:"tags"`
}

// PublishedPost is the read-only projection returned by the feed
// paginator. Distinct from Post: the feed knows nothing about
// publish status or licensing.
type PublishedPost struct {
	Id          string
	Title       string
	Url         string
	PublishedAt time.Time
	TagIds      []string
}

// CreatePostRequest describes a post to publish. Zero values fall
// back to the client configuration's defaults where one exists.
type CreatePostRequest struct {
	Title   string
	Content string

	// ContentFormat is either "markdown" (the default) or "html".
	ContentFormat string

	// Tags are de-duplicated and capped at Medium's per-post limit.
	Tags []string

	// CanonicalUrl marks the post as a re-publication of content
	// living at the given URL. The upsert operations use it to
	// declare that a new post supersedes an older one.
	CanonicalUrl string

	PublishStatus string
	License       string

	// PublishedAt optionally backdates or schedules the post.
	PublishedAt time.Time

	// AuthorId is the target user id. When empty, CreatePost
	// resolves it via the cached identity or a "me" lookup;
	// CreatePublicationPost requires it explicitly.
	AuthorId string
}

// wire model for the create endpoints
type createPostBodyJson struct {
	Title           string   `json:"title"`
	ContentFormat   string   `json:"contentFormat"`
	Content         string   `json:"content"`
	Tags            []string `json:"tags,omitempty"`
	CanonicalUrl    string   `json:"canonicalUrl,omitempty"`
	PublishStatus   string   `json:"publishStatus,omitempty"`
	License         string   `json:"license,omitempty"`
	PublishedAt     string   `json:"publishedAt,omitempty"`
	NotifyFollowers bool     `json:"notifyFollowers"`
}

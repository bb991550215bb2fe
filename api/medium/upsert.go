package medium

import (
	"context"
	"errors"
	"time"

	"github.com/hazelvis/Medium-Publisher-Logic/cache"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
)

// resolveUsername returns the username used for feed lookups,
// taken from the configuration or the cached identity. There is
// deliberately no implicit "me" lookup here: feed queries are
// unauthenticated, so a token is not required to use them.
func (c *Client) resolveUsername() (string, error) {
	if c.configs.Username != "" {
		return c.configs.Username, nil
	}
	if c.user != nil && c.user.Username != "" {
		return c.user.Username, nil
	}
	return "", mederrors.NewMissingParamError("username")
}

// FindPostByTitle scans the user's published feed for the first
// post whose title matches exactly (case-sensitive). Returns
// mederrors.ErrPostNotFound when nothing matches.
func (c *Client) FindPostByTitle(ctx context.Context, title string) (*PublishedPost, error) {
	if title == "" {
		return nil, mederrors.NewMissingParamError("title")
	}

	username, err := c.resolveUsername()
	if err != nil {
		return nil, err
	}

	posts, err := c.GetPublishedPosts(ctx, username)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.Title == title {
			return post, nil
		}
	}
	return nil, mederrors.ErrPostNotFound
}

// FindPostById is FindPostByTitle's sibling keyed on the post id.
// Medium offers no direct lookup-by-id, so this is a full feed
// scan as well, short-circuited by the local cache when enabled.
func (c *Client) FindPostById(ctx context.Context, postId string) (*PublishedPost, error) {
	if postId == "" {
		return nil, mederrors.NewMissingParamError("postId")
	}

	username, err := c.resolveUsername()
	if err != nil {
		return nil, err
	}

	if c.useCacheDb {
		if cachedPost := cache.GetCachedPost(username, postId); cachedPost != nil {
			return &PublishedPost{
				Id:          cachedPost.Id,
				Title:       cachedPost.Title,
				Url:         cachedPost.Url,
				PublishedAt: time.UnixMilli(cachedPost.PublishedAt),
				TagIds:      cachedPost.TagIds,
			}, nil
		}
	}

	posts, err := c.GetPublishedPosts(ctx, username)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.Id == postId {
			return post, nil
		}
	}
	return nil, mederrors.ErrPostNotFound
}

// UpdatePostById emulates an update on a platform without one:
// the original post's link is copied into the new request's
// canonical URL so the new post declares itself as the canonical
// version, then a plain create follows. The old post stays live.
// When the original cannot be found, this degrades to a plain
// create with whatever canonical URL the caller supplied.
func (c *Client) UpdatePostById(ctx context.Context, postId string, req *CreatePostRequest) (*Post, error) {
	originalPost, err := c.FindPostById(ctx, postId)
	if err != nil && !errors.Is(err, mederrors.ErrPostNotFound) {
		return nil, err
	}

	if originalPost != nil {
		req.CanonicalUrl = originalPost.Url
	}
	return c.CreatePost(ctx, req)
}

// UpdatePostByTitle looks up the post by title and delegates to
// UpdatePostById. Unlike UpdatePostById, a miss does NOT fall back
// to a create: mederrors.ErrPostNotFound is returned and nothing
// is published.
func (c *Client) UpdatePostByTitle(ctx context.Context, title string, req *CreatePostRequest) (*Post, error) {
	foundPost, err := c.FindPostByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return c.UpdatePostById(ctx, foundPost.Id, req)
}

// CreateOrUpdatePostByTitle updates the post when the title
// already exists and creates it otherwise.
func (c *Client) CreateOrUpdatePostByTitle(ctx context.Context, title string, req *CreatePostRequest) (*Post, error) {
	foundPost, err := c.FindPostByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, mederrors.ErrPostNotFound) {
			return c.CreatePost(ctx, req)
		}
		return nil, err
	}
	return c.UpdatePostById(ctx, foundPost.Id, req)
}

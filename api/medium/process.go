package medium

import (
	"time"

	"github.com/hazelvis/Medium-Publisher-Logic/cache"
	"github.com/hazelvis/Medium-Publisher-Logic/constants"
)

// processStreamPage projects one raw feed page into published
// posts and determines the next cursor.
//
// Non-post stream entries are dropped silently and do NOT count
// towards the page-size check: a page whose raw stream is full but
// holds fewer than the limit of actual posts is treated as the
// last page. Conversely, a full page whose next page turns out to
// be empty just costs one extra round trip, so an empty page here
// is perfectly valid.
func processStreamPage(payload *userStreamPayloadJson) ([]*PublishedPost, string) {
	if payload.User == nil {
		// unknown username, the feed treats it as an empty stream
		return nil, ""
	}

	connection := payload.User.ProfileStreamConnection
	var posts []*PublishedPost
	for _, item := range connection.Stream {
		if item.ItemType != "post" || item.Post == nil {
			continue
		}

		tagIds := make([]string, len(item.Post.Tags))
		for idx, tag := range item.Post.Tags {
			tagIds[idx] = tag.Id
		}

		var publishedAt time.Time
		if item.Post.FirstPublishedAt > 0 {
			publishedAt = time.UnixMilli(item.Post.FirstPublishedAt)
		}

		posts = append(posts, &PublishedPost{
			Id:          item.Post.Id,
			Title:       item.Post.Title,
			Url:         item.Post.MediumUrl,
			PublishedAt: publishedAt,
			TagIds:      tagIds,
		})
	}

	if len(posts) < constants.FEED_PAGE_LIMIT {
		return posts, ""
	}
	if connection.PagingInfo.Next == nil {
		return posts, ""
	}
	return posts, connection.PagingInfo.Next.To
}

// cachePublishedPosts mirrors a fetched feed into the local cache.
func cachePublishedPosts(username string, posts []*PublishedPost) {
	cachedPosts := make([]*cache.CachedPost, len(posts))
	for idx, post := range posts {
		cachedPosts[idx] = &cache.CachedPost{
			Id:          post.Id,
			Title:       post.Title,
			Url:         post.Url,
			PublishedAt: post.PublishedAt.UnixMilli(),
			TagIds:      post.TagIds,
		}
	}
	cache.CachePublishedPosts(username, cachedPosts)
}

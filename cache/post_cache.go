package cache

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	"github.com/hazelvis/Medium-Publisher-Logic/logger"
)

// example of the Key-Value pairs in the database
// |----------------------------|-----------------|
// | <username>/<post_id>`medium|post | post JSON |
// |----------------------------|-----------------|

const (
	SUFFIX          = "|"
	PLATFORM_SUFFIX = "`"
	POST            = SUFFIX + "post"
	FEED_FETCHED    = SUFFIX + "feed_fetched"
)

// CachedPost is the locally cached projection of a published post.
// Kept separate from the api package's types so that the cache
// schema does not change underneath old cache directories.
type CachedPost struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Url         string   `json:"url"`
	PublishedAt int64    `json:"published_at"` // unix milliseconds
	TagIds      []string `json:"tag_ids"`
}

func ParsePostKey(username, postId string) string {
	return username + "/" + postId + PLATFORM_SUFFIX + constants.MEDIUM + POST
}

func PostCacheExists(username, postId string) bool {
	return len(Get(ParsePostKey(username, postId))) > 0
}

// GetCachedPost returns the cached projection of the given post,
// or nil when it has not been cached.
func GetCachedPost(username, postId string) *CachedPost {
	value := Get(ParsePostKey(username, postId))
	if value == nil {
		return nil
	}

	var post CachedPost
	if err := json.Unmarshal(value, &post); err != nil {
		// stale/corrupted entry, drop it
		Delete(ParsePostKey(username, postId))
		return nil
	}
	return &post
}

// CachePublishedPosts stores the given posts in one batch write.
// Errors are logged and swallowed as the cache is best-effort.
func CachePublishedPosts(username string, posts []*CachedPost) {
	if CacheDb == nil || len(posts) == 0 {
		return
	}

	batch := CacheDb.Db.NewBatch()
	for _, post := range posts {
		value, err := json.Marshal(post)
		if err != nil {
			logger.MainLogger.Errorf("Failed to marshal post %s for caching: %s", post.Id, err)
			continue
		}
		if err := batch.Set([]byte(ParsePostKey(username, post.Id)), value, pebble.Sync); err != nil {
			logger.MainLogger.Errorf("Failed to batch post %s for caching: %s", post.Id, err)
		}
	}
	fetchedAt := ParseDateTimeToBytes(time.Now())
	if err := batch.Set([]byte(ParseFeedFetchedKey(username)), fetchedAt, pebble.Sync); err != nil {
		logger.MainLogger.Errorf("Failed to batch the feed timestamp for %s: %s", username, err)
	}

	if err := CacheDb.SetBatch(batch); err != nil {
		batch.Close()
		logger.MainLogger.Errorf("Failed to cache published posts for %s: %s", username, err)
	}
}

func ParseFeedFetchedKey(username string) string {
	return username + PLATFORM_SUFFIX + constants.MEDIUM + FEED_FETCHED
}

// GetFeedFetchedAt returns when the user's feed was last mirrored
// into the cache, or the zero time when it never was.
func GetFeedFetchedAt(username string) time.Time {
	value := Get(ParseFeedFetchedKey(username))
	if len(value) != 8 {
		return time.Time{}
	}
	return ParseBytesToDateTime(value)
}

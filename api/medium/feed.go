package medium

import (
	"context"
	"strconv"
	"time"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/hazelvis/Medium-Publisher-Logic/filters"
	"github.com/hazelvis/Medium-Publisher-Logic/httpfuncs"
)

// The internal query endpoint has no documentation; the two
// operations below were captured from the web client. One returns
// the full post projection, the other only the titles.
const (
	userStreamOperation = "UserStreamOverview"
	userStreamQuery     = `query UserStreamOverview($username: ID!, $pagingOptions: PagingOptions) {
  user(username: $username) {
    profileStreamConnection(paging: $pagingOptions) {
      pagingInfo {
        next {
          limit
          to
        }
      }
      stream {
        itemType
        post {
          id
          title
          mediumUrl
          firstPublishedAt
          tags {
            id
          }
        }
      }
    }
  }
}`

	userTitlesOperation = "UserStreamTitles"
	userTitlesQuery     = `query UserStreamTitles($username: ID!, $pagingOptions: PagingOptions) {
  user(username: $username) {
    profileStreamConnection(paging: $pagingOptions) {
      pagingInfo {
        next {
          limit
          to
        }
      }
      stream {
        itemType
        post {
          id
          title
        }
      }
    }
  }
}`
)

type pagingOptionsJson struct {
	Limit int    `json:"limit"`
	To    string `json:"to,omitempty"`
}

type userStreamVariablesJson struct {
	Username      string            `json:"username"`
	PagingOptions pagingOptionsJson `json:"pagingOptions"`
}

type userStreamReqJson struct {
	OperationName string                  `json:"operationName"`
	Query         string                  `json:"query"`
	Variables     userStreamVariablesJson `json:"variables"`
}

type feedTagJson struct {
	Id string `json:"id"`
}

type feedPostJson struct {
	Id               string        `json:"id"`
	Title            string        `json:"title"`
	MediumUrl        string        `json:"mediumUrl"`
	FirstPublishedAt int64         `json:"firstPublishedAt"`
	Tags             []feedTagJson `json:"tags"`
}

type streamItemJson struct {
	ItemType string        `json:"itemType"`
	Post     *feedPostJson `json:"post"`
}

type streamConnectionJson struct {
	PagingInfo struct {
		Next *pagingOptionsJson `json:"next"`
	} `json:"pagingInfo"`
	Stream []streamItemJson `json:"stream"`
}

// the payload below sits inside the usual "data" envelope which
// parseApiResponse has already stripped off
type userStreamPayloadJson struct {
	User *struct {
		ProfileStreamConnection streamConnectionJson `json:"profileStreamConnection"`
	} `json:"user"`
}

// getFeedPage issues one unauthenticated page query against the
// internal endpoint.
func (c *Client) getFeedPage(ctx context.Context, operation, query, username, cursor string) (*userStreamPayloadJson, error) {
	reqBody := &userStreamReqJson{
		OperationName: operation,
		Query:         query,
		Variables: userStreamVariablesJson{
			Username: username,
			PagingOptions: pagingOptionsJson{
				Limit: constants.FEED_PAGE_LIMIT,
				To:    cursor,
			},
		},
	}

	res, err := c.reqHandler(
		&httpfuncs.RequestArgs{
			Method: "POST",
			Url:    constants.MEDIUM_GRAPHQL_URL,
			Headers: map[string]string{
				"Accept":         "application/json",
				"Accept-Charset": "utf-8",
			},
			JsonBody:  reqBody,
			UserAgent: c.configs.UserAgent,
			Http2:     true,
			Context:   ctx,
		},
	)
	if err != nil {
		if err == context.Canceled {
			return nil, err
		}
		return nil, mederrors.NewUnknownApiError(err.Error())
	}

	payload, err := parseApiResponse(ctx, res)
	if err != nil {
		return nil, err
	}

	var streamPayload userStreamPayloadJson
	if err := httpfuncs.LoadJsonFromBytes(constants.MEDIUM_GRAPHQL_URL, payload, &streamPayload); err != nil {
		return nil, mederrors.NewUnknownApiError(err.Error())
	}
	return &streamPayload, nil
}

// getUserFeed stitches together the user's full published-post
// feed, one page at a time. Pages are strictly sequential as each
// page's cursor comes from the previous page's response, and a
// failed page discards everything accumulated so far.
func (c *Client) getUserFeed(ctx context.Context, operation, query, username string) ([]*PublishedPost, error) {
	if username == "" {
		return nil, mederrors.NewMissingParamError("username")
	}

	// "no cursor yet" is rendered as the current time so the
	// first page starts from the newest post
	cursor := strconv.FormatInt(time.Now().UnixMilli(), 10)

	var posts []*PublishedPost
	for {
		payload, err := c.getFeedPage(ctx, operation, query, username, cursor)
		if err != nil {
			return nil, err
		}

		pagePosts, nextCursor := processStreamPage(payload)
		posts = append(posts, pagePosts...)
		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}
	return posts, nil
}

// GetPublishedPosts returns every published post of the given
// user, newest first, in the order the feed returned them.
func (c *Client) GetPublishedPosts(ctx context.Context, username string) ([]*PublishedPost, error) {
	posts, err := c.getUserFeed(ctx, userStreamOperation, userStreamQuery, username)
	if err != nil {
		return nil, err
	}

	if c.useCacheDb {
		cachePublishedPosts(username, posts)
	}
	return posts, nil
}

// GetPublishedTitles returns only the titles of the given user's
// published posts via the leaner query variant.
func (c *Client) GetPublishedTitles(ctx context.Context, username string) ([]string, error) {
	posts, err := c.getUserFeed(ctx, userTitlesOperation, userTitlesQuery, username)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(posts))
	for idx, post := range posts {
		titles[idx] = post.Title
	}
	return titles, nil
}

// GetPublishedPostsWithFilters fetches the full feed and filters
// it locally. The pagination itself is never filtered, only the
// returned slice.
func (c *Client) GetPublishedPostsWithFilters(ctx context.Context, username string, postFilters *filters.Filters) ([]*PublishedPost, error) {
	if postFilters == nil {
		return c.GetPublishedPosts(ctx, username)
	}
	if err := postFilters.ValidateArgs(); err != nil {
		return nil, mederrors.NewUnknownApiError(err.Error())
	}

	posts, err := c.GetPublishedPosts(ctx, username)
	if err != nil {
		return nil, err
	}

	var filtered []*PublishedPost
	for _, post := range posts {
		if postFilters.MatchesPost(post.Title, post.PublishedAt, post.TagIds) {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

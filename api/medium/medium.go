package medium

import (
	"golang.org/x/oauth2"

	"github.com/hazelvis/Medium-Publisher-Logic/cache"
	"github.com/hazelvis/Medium-Publisher-Logic/configs"
	"github.com/hazelvis/Medium-Publisher-Logic/httpfuncs"
)

// Client wraps Medium's official v1 REST API and the internal
// query endpoint used for enumerating published posts.
type Client struct {
	configs *configs.Config

	// tokenSource produces the bearer token for authenticated
	// calls. Built from the configured access token by default;
	// a custom source can be injected via SetTokenSource.
	tokenSource oauth2.TokenSource

	// user is the lazily cached identity of the token's user,
	// pre-seeded from the configuration if it carries an id or
	// username and refreshed only by GetCurrentUser. Writes are
	// last-write-wins: callers invoking operations concurrently
	// on one Client must serialise externally.
	user *User

	// useCacheDb enables the local published-post cache.
	useCacheDb bool

	reqHandler httpfuncs.RequestHandler
}

// NewClient validates the given config, resolves its defaults
// once and returns a ready-to-use client.
func NewClient(config *configs.Config) (*Client, error) {
	if config == nil {
		config = &configs.Config{}
	}
	if err := config.ValidateDefaults(); err != nil {
		return nil, err
	}

	client := &Client{
		configs:    config,
		reqHandler: httpfuncs.CallRequest,
	}
	if config.AccessToken != "" {
		client.tokenSource = oauth2.StaticTokenSource(
			&oauth2.Token{
				AccessToken: config.AccessToken,
				TokenType:   "Bearer",
			},
		)
	}
	if config.UserId != "" || config.Username != "" {
		client.user = &User{
			Id:       config.UserId,
			Username: config.Username,
		}
	}
	return client, nil
}

// SetTokenSource replaces the client's token source, e.g. with a
// refreshing source obtained from a full OAuth2 flow.
func (c *Client) SetTokenSource(tokenSource oauth2.TokenSource) {
	c.tokenSource = tokenSource
}

// SetRequestHandler replaces the function used to make HTTP
// requests. Mainly used in tests to avoid hitting the network.
func (c *Client) SetRequestHandler(handler httpfuncs.RequestHandler) {
	c.reqHandler = handler
}

// EnableCacheDb initialises the local published-post cache at the
// given path (the default path is used when empty). The cache only
// lets FindPostById skip a feed scan after a prior full fetch; it
// never changes what gets published.
func (c *Client) EnableCacheDb(path string) error {
	if err := cache.InitCache(path); err != nil {
		return err
	}
	c.useCacheDb = true
	return nil
}

// CachedUser returns the client's cached identity, or nil if no
// lookup has happened and nothing was pre-seeded.
func (c *Client) CachedUser() *User {
	return c.user
}

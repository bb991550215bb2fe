package httpfuncs

import (
	"context"
	"net/http"
)

// RequestHandler is the function used to make a request. The client
// swaps this out in tests to avoid hitting the network.
type RequestHandler func(reqArgs *RequestArgs) (*http.Response, error)

type RequestArgs struct {
	// Main Request Options
	Method  string
	Url     string
	Timeout int // in seconds

	// Additional Request Options
	Headers            map[string]string
	Params             map[string]string
	UserAgent          string
	DisableCompression bool

	// JsonBody, if set, is marshalled and sent as the request
	// body with a Content-Type of application/json.
	JsonBody any

	// HTTP/2 and HTTP/3 Options
	Http2 bool
	Http3 bool

	// Check status will check the status code of the response for 200 OK.
	// If the status code is not 200 OK, an error is returned.
	// Otherwise, the response is returned regardless of the status code.
	CheckStatus bool

	// Context is used to cancel the request if needed.
	// E.g. if the user presses Ctrl+C, we can use context.WithCancel(context.Background())
	Context context.Context
}

type GithubApiRes struct {
	TagName string `json:"tag_name"`
	HtmlUrl string `json:"html_url"`
}

type versionInfo struct {
	Major int
	Minor int
	Patch int
}

package constants

import (
	"regexp"
)

const (
	DEBUG_MODE    = false // Will save a copy of all JSON responses from the API
	DEFAULT_PERMS = 0755  // Owner: rwx, Group: rx, Others: rx
	VERSION       = "1.0.2"
	REPO_NAME     = "hazelvis/Medium-Publisher-Logic"

	MEDIUM       = "medium"
	MEDIUM_TITLE = "Medium"
	MEDIUM_URL   = "https://medium.com"

	// Official REST API (v1) endpoints
	MEDIUM_API_URL              = "https://api.medium.com/v1"
	MEDIUM_ME_API_URL           = MEDIUM_API_URL + "/me"
	MEDIUM_USERS_API_URL        = MEDIUM_API_URL + "/users"
	MEDIUM_PUBLICATIONS_API_URL = MEDIUM_API_URL + "/publications"

	// Undocumented internal query endpoint used for
	// enumerating a user's published posts. Unauthenticated.
	MEDIUM_GRAPHQL_URL = MEDIUM_URL + "/_/graphql"

	// All API calls are bounded by this per-request timeout.
	API_TIMEOUT = 5 // in seconds

	// The internal query endpoint returns at most this
	// many stream entries per page.
	FEED_PAGE_LIMIT = 25

	// Medium silently drops tags beyond the first five.
	MAX_TAGS_PER_POST = 5

	LOG_FILENAME_FORMAT = "medium-publisher-logic_v%s_%s.log"

	CONTENT_FORMAT_MARKDOWN = "markdown"
	CONTENT_FORMAT_HTML     = "html"

	PUBLISH_STATUS_PUBLIC   = "public"
	PUBLISH_STATUS_DRAFT    = "draft"
	PUBLISH_STATUS_UNLISTED = "unlisted"

	LICENSE_ALL_RIGHTS_RESERVED = "all-rights-reserved"

	// Defaults applied at client construction when the
	// configuration leaves them empty.
	DEFAULT_CONTENT_FORMAT = CONTENT_FORMAT_MARKDOWN
	DEFAULT_PUBLISH_STATUS = PUBLISH_STATUS_PUBLIC
	DEFAULT_LICENSE        = LICENSE_ALL_RIGHTS_RESERVED
)

// Although the variables below are not
// constants, they are not supposed to be changed
var (
	USER_AGENT string

	GITHUB_VER_REGEX = regexp.MustCompile(`\d+\.\d+\.\d+`)

	// Cursor values handed back by the feed endpoint are
	// epoch milliseconds rendered as a decimal string.
	FEED_CURSOR_REGEX = regexp.MustCompile(`^\d+$`)

	ACCEPTED_CONTENT_FORMATS = []string{
		CONTENT_FORMAT_MARKDOWN,
		CONTENT_FORMAT_HTML,
	}
	ACCEPTED_PUBLISH_STATUSES = []string{
		PUBLISH_STATUS_PUBLIC,
		PUBLISH_STATUS_DRAFT,
		PUBLISH_STATUS_UNLISTED,
	}
	ACCEPTED_LICENSES = []string{
		LICENSE_ALL_RIGHTS_RESERVED,
		"cc-40-by",
		"cc-40-by-sa",
		"cc-40-by-nd",
		"cc-40-by-nc",
		"cc-40-by-nc-nd",
		"cc-40-by-nc-sa",
		"cc-40-zero",
		"public-domain",
	}
)

package configs

import (
	"fmt"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/hazelvis/Medium-Publisher-Logic/utils"
)

type Config struct {
	// AccessToken is the self-issued integration token used
	// as the bearer token for all authenticated API calls.
	AccessToken string

	// UserId and Username can be pre-seeded to skip the
	// lazy "get current user" lookup. Both are optional.
	UserId   string
	Username string

	// DefaultPublishStatus and DefaultLicense are applied to
	// create requests that do not set them explicitly.
	// Resolved once here instead of being read ambiently per call.
	DefaultPublishStatus string
	DefaultLicense       string

	// NotifyFollowers controls whether newly published posts
	// notify the author's followers.
	NotifyFollowers bool

	// UserAgent is the user agent sent with every request
	UserAgent string
}

// ValidateDefaults fills in the unset defaults and validates the
// enumerated values. Called once at client construction.
func (c *Config) ValidateDefaults() error {
	if c.UserAgent == "" {
		c.UserAgent = constants.USER_AGENT
	}

	if c.DefaultPublishStatus == "" {
		c.DefaultPublishStatus = constants.DEFAULT_PUBLISH_STATUS
	} else if !utils.SliceContains(constants.ACCEPTED_PUBLISH_STATUSES, c.DefaultPublishStatus) {
		return fmt.Errorf(
			"configs error %d: invalid default publish status %q",
			mederrors.INPUT_ERROR,
			c.DefaultPublishStatus,
		)
	}

	if c.DefaultLicense == "" {
		c.DefaultLicense = constants.DEFAULT_LICENSE
	} else if !utils.SliceContains(constants.ACCEPTED_LICENSES, c.DefaultLicense) {
		return fmt.Errorf(
			"configs error %d: invalid default license %q",
			mederrors.INPUT_ERROR,
			c.DefaultLicense,
		)
	}

	return nil
}

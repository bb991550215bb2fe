package configs

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/hazelvis/Medium-Publisher-Logic/iofuncs"
	"github.com/hazelvis/Medium-Publisher-Logic/logger"
)

const (
	ACCESS_TOKEN_ENV_KEY     = "MEDIUM_ACCESS_TOKEN"
	USER_ID_ENV_KEY          = "MEDIUM_USER_ID"
	USERNAME_ENV_KEY         = "MEDIUM_USERNAME"
	PUBLISH_STATUS_ENV_KEY   = "MEDIUM_PUBLISH_STATUS"
	LICENSE_ENV_KEY          = "MEDIUM_LICENSE"
	NOTIFY_FOLLOWERS_ENV_KEY = "MEDIUM_NOTIFY_FOLLOWERS"
)

// LoadFromEnv builds a Config from the process environment,
// loading the given .env file first if one is provided.
// The returned config is validated via ValidateDefaults.
func LoadFromEnv(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		// a missing .env file is not fatal, the process
		// environment may already have the values
		if !iofuncs.PathExists(envFilePath) {
			logger.MainLogger.Infof("No .env file found at %q", envFilePath)
		} else if err := godotenv.Load(envFilePath); err != nil {
			return nil, fmt.Errorf(
				"configs error %d: failed to load the .env file at %q, more info => %w",
				mederrors.OS_ERROR,
				envFilePath,
				err,
			)
		}
	}

	notifyFollowers, _ := strconv.ParseBool(os.Getenv(NOTIFY_FOLLOWERS_ENV_KEY))
	config := &Config{
		AccessToken:          os.Getenv(ACCESS_TOKEN_ENV_KEY),
		UserId:               os.Getenv(USER_ID_ENV_KEY),
		Username:             os.Getenv(USERNAME_ENV_KEY),
		DefaultPublishStatus: os.Getenv(PUBLISH_STATUS_ENV_KEY),
		DefaultLicense:       os.Getenv(LICENSE_ENV_KEY),
		NotifyFollowers:      notifyFollowers,
	}
	if err := config.ValidateDefaults(); err != nil {
		return nil, err
	}
	return config, nil
}

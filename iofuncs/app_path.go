package iofuncs

import (
	"fmt"
	"os"
	"path/filepath"

	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
)

var APP_PATH = getAppPath()

// Returns the path to the application's config directory
func getAppPath() string {
	appPath, err := os.UserConfigDir()
	if err != nil {
		panic(
			fmt.Errorf(
				"error %d, failed to get user's config directory: %v",
				mederrors.OS_ERROR,
				err,
			),
		)
	}
	return filepath.Join(appPath, "Medium-Publisher")
}

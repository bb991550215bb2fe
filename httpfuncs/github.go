package httpfuncs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
)

var (
	ErrProcessLatestVer = fmt.Errorf(
		"github error %d: unable to process the latest version",
		mederrors.DEV_ERROR,
	)
	ErrProcessVer = fmt.Errorf(
		"github error %d: unable to process the current version",
		mederrors.DEV_ERROR,
	)
)

func processVer(apiResVer string) (*versionInfo, error) {
	// split the version string by "."
	ver := strings.Split(strings.TrimPrefix(apiResVer, "v"), ".")
	if len(ver) != 3 {
		return nil, ErrProcessLatestVer
	}

	// convert the version string to int
	verSlice := make([]int, 3)
	for i, v := range ver {
		verInt, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrProcessLatestVer
		}
		verSlice[i] = verInt
	}

	return &versionInfo{
		Major: verSlice[0],
		Minor: verSlice[1],
		Patch: verSlice[2],
	}, nil
}

// check if the latest version is greater than the current version.
// returns true if the current version is outdated.
func checkIfVerIsOutdated(curVer *versionInfo, latestVer *versionInfo) bool {
	if latestVer.Major > curVer.Major {
		return true
	}

	if latestVer.Major == curVer.Major {
		if latestVer.Minor > curVer.Minor {
			return true
		}

		if latestVer.Minor == curVer.Minor {
			if latestVer.Patch > curVer.Patch {
				return true
			}
		}
	}
	return false
}

// Check for the latest release of the given repo and whether the
// given version lags behind it.
func CheckVer(repo string, ver string) (bool, error) {
	if !constants.GITHUB_VER_REGEX.MatchString(ver) {
		return false, fmt.Errorf(
			"github error %d: unable to process the current version, %q",
			mederrors.DEV_ERROR,
			ver,
		)
	}

	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo)
	res, err := CallRequest(
		&RequestArgs{
			Url:         url,
			Method:      "GET",
			CheckStatus: true,
			Http2:       true,
		},
	)
	if err != nil {
		return false, fmt.Errorf(
			"github error %d: unable to check for the latest version, more info => %w",
			mederrors.CONNECTION_ERROR,
			err,
		)
	}

	var apiRes GithubApiRes
	if err := LoadJsonFromResponse(res, &apiRes); err != nil {
		return false, err
	}

	latestVer, err := processVer(apiRes.TagName)
	if err != nil {
		return false, err
	}

	programVer, err := processVer(ver)
	if err != nil {
		return false, ErrProcessVer
	}

	return checkIfVerIsOutdated(programVer, latestVer), nil
}

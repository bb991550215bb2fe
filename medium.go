package mplogic

import (
	"context"
	"fmt"

	"github.com/hazelvis/Medium-Publisher-Logic/api/medium"
	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/hazelvis/Medium-Publisher-Logic/httpfuncs"
)

// Publish modes for PublishProcess
const (
	PUBLISH_MODE_CREATE           = "create"
	PUBLISH_MODE_UPDATE_BY_TITLE  = "update"
	PUBLISH_MODE_CREATE_OR_UPDATE = "upsert"
)

// PublishProcess is the high-level entry point binding the locate
// and create steps together based on the requested mode.
//
// Will panic on an invalid mode as this is a developer error.
func PublishProcess(ctx context.Context, client *medium.Client, req *medium.CreatePostRequest, mode string) (*medium.Post, error) {
	switch mode {
	case PUBLISH_MODE_CREATE:
		return client.CreatePost(ctx, req)
	case PUBLISH_MODE_UPDATE_BY_TITLE:
		return client.UpdatePostByTitle(ctx, req.Title, req)
	case PUBLISH_MODE_CREATE_OR_UPDATE:
		return client.CreateOrUpdatePostByTitle(ctx, req.Title, req)
	default:
		panic(
			fmt.Errorf(
				"error %d: invalid publish mode, %q, in PublishProcess",
				mederrors.DEV_ERROR,
				mode,
			),
		)
	}
}

// CheckForNewVersion reports whether a newer release of this
// library has been published.
func CheckForNewVersion() (bool, error) {
	return httpfuncs.CheckVer(constants.REPO_NAME, constants.VERSION)
}

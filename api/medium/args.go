package medium

import (
	"time"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/hazelvis/Medium-Publisher-Logic/logger"
	"github.com/hazelvis/Medium-Publisher-Logic/parsers"
	"github.com/hazelvis/Medium-Publisher-Logic/utils"
)

// resolveCreateBody validates the given request and fills in the
// configured defaults, returning the wire body to submit. Purely
// local: no network call is made, so a validation failure leaves
// no trace on the remote side.
func (c *Client) resolveCreateBody(req *CreatePostRequest) (*createPostBodyJson, error) {
	if req == nil || req.Content == "" {
		return nil, mederrors.NewMissingParamError("content")
	}

	contentFormat := req.ContentFormat
	if contentFormat == "" {
		contentFormat = constants.DEFAULT_CONTENT_FORMAT
	} else if !utils.SliceContains(constants.ACCEPTED_CONTENT_FORMATS, contentFormat) {
		return nil, mederrors.NewUnknownApiErrorf("invalid content format, %q", contentFormat)
	}

	title := req.Title
	canonicalUrl := req.CanonicalUrl
	if contentFormat == constants.CONTENT_FORMAT_HTML {
		// HTML content can carry both of these itself
		if title == "" {
			extractedTitle, err := parsers.ExtractTitleFromHtml(req.Content)
			if err != nil {
				return nil, mederrors.NewUnknownApiError(err.Error())
			}
			title = extractedTitle
		}
		if canonicalUrl == "" {
			extractedLink, err := parsers.ExtractCanonicalLink(req.Content)
			if err != nil {
				return nil, mederrors.NewUnknownApiError(err.Error())
			}
			canonicalUrl = extractedLink
		}
	}
	if title == "" {
		return nil, mederrors.NewMissingParamError("title")
	}

	publishStatus := req.PublishStatus
	if publishStatus == "" {
		publishStatus = c.configs.DefaultPublishStatus
	} else if !utils.SliceContains(constants.ACCEPTED_PUBLISH_STATUSES, publishStatus) {
		return nil, mederrors.NewUnknownApiErrorf("invalid publish status, %q", publishStatus)
	}

	license := req.License
	if license == "" {
		license = c.configs.DefaultLicense
	} else if !utils.SliceContains(constants.ACCEPTED_LICENSES, license) {
		return nil, mederrors.NewUnknownApiErrorf("invalid license, %q", license)
	}

	tags := utils.RemoveSliceDuplicates(req.Tags)
	if len(tags) > constants.MAX_TAGS_PER_POST {
		logger.MainLogger.Infof(
			"Truncating %d tags to Medium's limit of %d for post %q",
			len(tags),
			constants.MAX_TAGS_PER_POST,
			title,
		)
		tags = tags[:constants.MAX_TAGS_PER_POST]
	}

	var publishedAt string
	if !req.PublishedAt.IsZero() {
		publishedAt = req.PublishedAt.UTC().Format(time.RFC3339)
	}

	return &createPostBodyJson{
		Title:           title,
		ContentFormat:   contentFormat,
		Content:         req.Content,
		Tags:            tags,
		CanonicalUrl:    canonicalUrl,
		PublishStatus:   publishStatus,
		License:         license,
		PublishedAt:     publishedAt,
		NotifyFollowers: c.configs.NotifyFollowers,
	}, nil
}

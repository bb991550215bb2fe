package medium

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/hazelvis/Medium-Publisher-Logic/httpfuncs"
)

// apiHeaders returns the fixed headers sent with every call to the
// official API. Fails without a network call when no token is
// available.
func (c *Client) apiHeaders() (map[string]string, error) {
	if c.tokenSource == nil {
		return nil, mederrors.NewMissingParamError("accessToken")
	}

	token, err := c.tokenSource.Token()
	if err != nil {
		return nil, mederrors.NewUnknownApiErrorf("failed to obtain an access token, more info => %v", err)
	}
	return map[string]string{
		"Authorization":  token.Type() + " " + token.AccessToken,
		"Accept":         "application/json",
		"Accept-Charset": "utf-8",
	}, nil
}

// callApi issues one request to the official API and unmarshals
// the normalised payload into out (when non-nil). Every failure
// surfaces as an *mederrors.ApiError except context cancellation.
func (c *Client) callApi(ctx context.Context, method, url string, jsonBody, out any) error {
	headers, err := c.apiHeaders()
	if err != nil {
		return err
	}

	res, err := c.reqHandler(
		&httpfuncs.RequestArgs{
			Method:    method,
			Url:       url,
			Headers:   headers,
			JsonBody:  jsonBody,
			UserAgent: c.configs.UserAgent,
			Http2:     true,
			Context:   ctx,
		},
	)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return mederrors.NewUnknownApiError(err.Error())
	}

	payload, err := parseApiResponse(ctx, res)
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return mederrors.NewUnknownApiErrorf(
				"failed to unmarshal json response from %s, more info => %v",
				url,
				err,
			)
		}
	}
	return nil
}

// GetCurrentUser fetches the profile of the token's user and
// caches its id and username for later reuse. Requires the
// basicProfile scope on the token.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.callApi(ctx, "GET", constants.MEDIUM_ME_API_URL, nil, &user); err != nil {
		return nil, err
	}

	c.user = &user
	return &user, nil
}

// GetUserPublications lists the publications the given user has
// contributed to.
func (c *Client) GetUserPublications(ctx context.Context, userId string) ([]*Publication, error) {
	if userId == "" {
		return nil, mederrors.NewMissingParamError("userId")
	}

	var publications []*Publication
	url := fmt.Sprintf("%s/%s/publications", constants.MEDIUM_USERS_API_URL, userId)
	if err := c.callApi(ctx, "GET", url, nil, &publications); err != nil {
		return nil, err
	}
	return publications, nil
}

// GetPublicationContributors lists the contributors of the given
// publication together with their roles.
func (c *Client) GetPublicationContributors(ctx context.Context, publicationId string) ([]*Contributor, error) {
	if publicationId == "" {
		return nil, mederrors.NewMissingParamError("publicationId")
	}

	var contributors []*Contributor
	url := fmt.Sprintf("%s/%s/contributors", constants.MEDIUM_PUBLICATIONS_API_URL, publicationId)
	if err := c.callApi(ctx, "GET", url, nil, &contributors); err != nil {
		return nil, err
	}
	return contributors, nil
}

// resolveAuthorId returns the target user id for a create request,
// falling back to the cached identity and finally to a "me" lookup.
func (c *Client) resolveAuthorId(ctx context.Context) (string, error) {
	if c.user != nil && c.user.Id != "" {
		return c.user.Id, nil
	}

	user, err := c.GetCurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if user.Id == "" {
		return "", mederrors.NewUnknownApiError("the \"me\" endpoint returned a user without an id")
	}
	return user.Id, nil
}

// CreatePost publishes a post under the given author, resolving
// the author lazily when the request leaves it empty.
func (c *Client) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	body, err := c.resolveCreateBody(req)
	if err != nil {
		return nil, err
	}

	authorId := req.AuthorId
	if authorId == "" {
		if authorId, err = c.resolveAuthorId(ctx); err != nil {
			return nil, err
		}
	}

	var post Post
	url := fmt.Sprintf("%s/%s/posts", constants.MEDIUM_USERS_API_URL, authorId)
	if err := c.callApi(ctx, "POST", url, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePublicationPost publishes a post under the given
// publication. Unlike CreatePost, the author id must be supplied
// explicitly as no lazy lookup happens at this entry point.
func (c *Client) CreatePublicationPost(ctx context.Context, publicationId string, req *CreatePostRequest) (*Post, error) {
	if publicationId == "" {
		return nil, mederrors.NewMissingParamError("publicationId")
	}
	if req == nil || req.AuthorId == "" {
		return nil, mederrors.NewMissingParamError("userId")
	}

	body, err := c.resolveCreateBody(req)
	if err != nil {
		return nil, err
	}

	var post Post
	url := fmt.Sprintf("%s/%s/posts", constants.MEDIUM_PUBLICATIONS_API_URL, publicationId)
	if err := c.callApi(ctx, "POST", url, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

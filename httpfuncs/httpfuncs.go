package httpfuncs

import (
	"context"
	"fmt"
	"io"
	"net/http"

	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	ctxio "github.com/jbenet/go-context/io"
)

// Returns the URL of the request that produced the given
// response, or "unknown" if it is not available (e.g. for
// responses crafted in tests).
func GetResUrl(res *http.Response) string {
	if res.Request != nil && res.Request.URL != nil {
		return res.Request.URL.String()
	}
	return "unknown"
}

// Reads and returns the response body in bytes and closes it
func ReadResBody(res *http.Response) ([]byte, error) {
	return ReadResBodyWithCtx(context.Background(), res)
}

// ReadResBodyWithCtx is ReadResBody with a context so that slow
// body reads can be abandoned on cancellation.
func ReadResBodyWithCtx(ctx context.Context, res *http.Response) ([]byte, error) {
	defer res.Body.Close()
	body, err := io.ReadAll(ctxio.NewReader(ctx, res.Body))
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to read response body from %s due to %w",
			mederrors.RESPONSE_ERROR,
			GetResUrl(res),
			err,
		)
	}
	return body, nil
}

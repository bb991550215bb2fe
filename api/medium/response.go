package medium

import (
	"context"
	"encoding/json"
	"net/http"

	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/hazelvis/Medium-Publisher-Logic/httpfuncs"
)

type apiErrorJson struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Medium wraps every API response in the same envelope: a "data"
// field on success, an "errors" array on rejection.
type apiEnvelopeJson struct {
	Data   json.RawMessage `json:"data"`
	Errors []apiErrorJson  `json:"errors"`
}

// parseApiResponse normalises a response into either its payload
// bytes or an *mederrors.ApiError. The mapping is total over all
// status codes:
//   - 2xx => the envelope's "data" field if present, else the whole body
//   - 4xx/5xx => the first entry of the "errors" array, verbatim
//   - anything else => a generic "unexpected response" error
func parseApiResponse(ctx context.Context, res *http.Response) (json.RawMessage, error) {
	body, err := httpfuncs.ReadResBodyWithCtx(ctx, res)
	if err != nil {
		return nil, mederrors.NewUnknownApiError(err.Error())
	}

	switch statusClass := res.StatusCode / 100; statusClass {
	case 2:
		var envelope apiEnvelopeJson
		if err := httpfuncs.LoadJsonFromBytes(httpfuncs.GetResUrl(res), body, &envelope); err != nil {
			return nil, mederrors.NewUnknownApiError(err.Error())
		}
		if len(envelope.Data) > 0 {
			return envelope.Data, nil
		}
		return json.RawMessage(body), nil
	case 4, 5:
		var envelope apiEnvelopeJson
		if err := httpfuncs.LoadJsonFromBytes(httpfuncs.GetResUrl(res), body, &envelope); err != nil {
			return nil, mederrors.NewUnknownApiError(err.Error())
		}
		if len(envelope.Errors) == 0 {
			// the expected error shape is absent, surface that
			// as its own parse failure instead of crashing
			return nil, mederrors.NewUnknownApiErrorf(
				"unparsable %s error response from %s",
				res.Status,
				httpfuncs.GetResUrl(res),
			)
		}
		firstErr := envelope.Errors[0]
		return nil, mederrors.NewApiError(firstErr.Code, firstErr.Message)
	default:
		return nil, mederrors.NewUnknownApiErrorf(
			"unexpected %s response from %s",
			res.Status,
			httpfuncs.GetResUrl(res),
		)
	}
}

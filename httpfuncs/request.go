package httpfuncs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	mederrors "github.com/hazelvis/Medium-Publisher-Logic/errors"
	"github.com/quic-go/quic-go/http3"
)

// Get a new HTTP/2 or HTTP/3 client based on the request arguments
func GetHttpClient(reqArgs *RequestArgs) *http.Client {
	if reqArgs.Http2 {
		return &http.Client{
			Transport: &http.Transport{
				DisableCompression: reqArgs.DisableCompression,
			},
		}
	}
	return &http.Client{
		Transport: &http3.RoundTripper{
			DisableCompression: reqArgs.DisableCompression,
		},
	}
}

// add headers to the request
func AddHeaders(headers map[string]string, defaultUserAgent string, req *http.Request) {
	if len(headers) == 0 {
		return
	}

	if userAgent, ok := headers["User-Agent"]; !ok || userAgent == "" {
		headers["User-Agent"] = defaultUserAgent
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

// add params to the request
func AddParams(params map[string]string, req *http.Request) {
	if len(params) == 0 {
		return
	}

	query := req.URL.Query()
	for key, value := range params {
		query.Add(key, value)
	}
	req.URL.RawQuery = query.Encode()
}

// Send the request to the target URL. A single attempt is made;
// failed requests are never retried as the caller is expected to
// surface the error instead of papering over it.
func sendRequest(req *http.Request, reqArgs *RequestArgs) (*http.Response, error) {
	AddHeaders(reqArgs.Headers, reqArgs.UserAgent, req)
	AddParams(reqArgs.Params, req)

	client := GetHttpClient(reqArgs)
	client.Timeout = time.Duration(reqArgs.Timeout) * time.Second
	res, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, context.Canceled
		}
		return nil, fmt.Errorf(
			"error %d: the request to %s failed, more info => %w",
			mederrors.CONNECTION_ERROR,
			reqArgs.Url,
			err,
		)
	}

	if reqArgs.CheckStatus && res.StatusCode != 200 {
		res.Body.Close()
		return nil, fmt.Errorf(
			"error %d: the request to %s failed with a %s response",
			mederrors.RESPONSE_ERROR,
			reqArgs.Url,
			res.Status,
		)
	}
	return res, nil
}

// CallRequest is used to make a request to a URL and return the response
//
// The request body, if any, is taken from reqArgs.JsonBody and sent
// as JSON.
func CallRequest(reqArgs *RequestArgs) (*http.Response, error) {
	reqArgs.ValidateArgs()

	var body *bytes.Reader
	if reqArgs.JsonBody != nil {
		jsonBytes, err := json.Marshal(reqArgs.JsonBody)
		if err != nil {
			return nil, fmt.Errorf(
				"error %d: unable to marshal the request body, more info => %w",
				mederrors.JSON_ERROR,
				err,
			)
		}
		body = bytes.NewReader(jsonBytes)
		reqArgs.Headers["Content-Type"] = "application/json"
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(
		reqArgs.Context,
		reqArgs.Method,
		reqArgs.Url,
		body,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"error %d: unable to create a new request, more info => %w",
			mederrors.DEV_ERROR,
			err,
		)
	}

	return sendRequest(req, reqArgs)
}

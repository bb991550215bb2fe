package httpfuncs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
)

func TestCallRequestSendsHeadersAndParams(t *testing.T) {
	var gotHeader http.Header
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		gotQuery = r.URL.RawQuery
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	res, err := CallRequest(
		&RequestArgs{
			Method: "GET",
			Url:    server.URL,
			Headers: map[string]string{
				"Accept": "application/json",
			},
			Params: map[string]string{
				"format": "json",
			},
			Http2: true,
		},
	)
	if err != nil {
		t.Fatalf("Failed to call the test server: %v", err)
	}
	res.Body.Close()

	if gotHeader.Get("Accept") != "application/json" {
		t.Errorf("Expected the Accept header to be sent, got %q", gotHeader.Get("Accept"))
	}
	if gotHeader.Get("User-Agent") != constants.USER_AGENT {
		t.Errorf("Expected the default user agent, got %q", gotHeader.Get("User-Agent"))
	}
	if gotQuery != "format=json" {
		t.Errorf("Expected the params in the query string, got %q", gotQuery)
	}
}

func TestCallRequestMarshalsJsonBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode the request body: %v", err)
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	res, err := CallRequest(
		&RequestArgs{
			Method:   "POST",
			Url:      server.URL,
			JsonBody: map[string]string{"title": "Hello"},
			Http2:    true,
		},
	)
	if err != nil {
		t.Fatalf("Failed to call the test server: %v", err)
	}
	res.Body.Close()

	if gotContentType != "application/json" {
		t.Errorf("Expected a JSON content type, got %q", gotContentType)
	}
	if gotBody["title"] != "Hello" {
		t.Errorf("Expected the marshalled body, got %v", gotBody)
	}
}

func TestCallRequestCheckStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := CallRequest(
		&RequestArgs{
			Method:      "GET",
			Url:         server.URL,
			CheckStatus: true,
			Http2:       true,
		},
	)
	if err == nil {
		t.Fatal("Expected an error for the 502 response, got nil")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("Expected the status in the error, got %v", err)
	}
}

func TestCallRequestReturnsNonOkResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors": [{"message": "not found", "code": 4040}]}`))
	}))
	defer server.Close()

	res, err := CallRequest(
		&RequestArgs{
			Method: "GET",
			Url:    server.URL,
			Http2:  true,
		},
	)
	if err != nil {
		t.Fatalf("Expected the response to be returned as is, got %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 404 {
		t.Errorf("Expected the 404 to pass through, got %d", res.StatusCode)
	}
}

func TestValidateArgsFillsDefaults(t *testing.T) {
	args := &RequestArgs{
		Method: "GET",
		Url:    "https://medium.com",
	}
	args.ValidateArgs()

	if args.Timeout != constants.API_TIMEOUT {
		t.Errorf("Expected the default timeout, got %d", args.Timeout)
	}
	if !args.Http2 {
		t.Error("Expected HTTP/2 to be the default")
	}
	if args.Context == nil {
		t.Error("Expected a default context")
	}
}

func TestValidateArgsPanicsOnConflictingProtocols(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic when both protocols are enabled")
		}
	}()

	args := &RequestArgs{
		Method: "GET",
		Url:    "https://medium.com",
		Http2:  true,
		Http3:  true,
	}
	args.ValidateArgs()
}

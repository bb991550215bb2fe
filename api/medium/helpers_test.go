package medium

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/hazelvis/Medium-Publisher-Logic/configs"
	"github.com/hazelvis/Medium-Publisher-Logic/httpfuncs"
)

func newFakeResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// recordingHandler replaces the client's request handler in tests,
// recording every request and replaying canned responses in order.
type recordingHandler struct {
	t         *testing.T
	calls     []*httpfuncs.RequestArgs
	responses []*http.Response
}

func (h *recordingHandler) handle(reqArgs *httpfuncs.RequestArgs) (*http.Response, error) {
	h.calls = append(h.calls, reqArgs)
	if len(h.responses) == 0 {
		h.t.Fatalf("Unexpected request #%d to %s", len(h.calls), reqArgs.Url)
	}

	res := h.responses[0]
	h.responses = h.responses[1:]
	return res, nil
}

func (h *recordingHandler) queue(statusCode int, body string) {
	h.responses = append(h.responses, newFakeResponse(statusCode, body))
}

func newTestClient(t *testing.T, config *configs.Config) (*Client, *recordingHandler) {
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	handler := &recordingHandler{t: t}
	client.SetRequestHandler(handler.handle)
	return client, handler
}

// makeFeedPage renders one feed page response body with the given
// number of post items, interleaved non-post items and next cursor.
func makeFeedPage(t *testing.T, postIdOffset, numPosts, numNonPosts int, nextCursor string) string {
	var stream []streamItemJson
	for i := 0; i < numPosts; i++ {
		stream = append(stream, streamItemJson{
			ItemType: "post",
			Post: &feedPostJson{
				Id:               fmt.Sprintf("post-%d", postIdOffset+i),
				Title:            fmt.Sprintf("Post %d", postIdOffset+i),
				MediumUrl:        fmt.Sprintf("https://medium.com/@hazelvis/post-%d", postIdOffset+i),
				FirstPublishedAt: int64(1700000000000 + (postIdOffset+i)*1000),
				Tags:             []feedTagJson{{Id: "golang"}},
			},
		})
	}
	for i := 0; i < numNonPosts; i++ {
		stream = append(stream, streamItemJson{ItemType: "quote"})
	}

	connection := streamConnectionJson{Stream: stream}
	if nextCursor != "" {
		connection.PagingInfo.Next = &pagingOptionsJson{
			Limit: 25,
			To:    nextCursor,
		}
	}

	body, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"user": map[string]any{
				"profileStreamConnection": connection,
			},
		},
	})
	if err != nil {
		t.Fatalf("Failed to marshal feed page: %v", err)
	}
	return string(body)
}

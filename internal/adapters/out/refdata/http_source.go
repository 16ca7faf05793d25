package refdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxCollectionSize caps how much of a response body is read.
const maxCollectionSize = 8 << 20

// HTTPSource fetches <baseURL>/<collection>.json with GET.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source for baseURL with a per-request timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the collection. Any non-2xx status is an error.
func (s *HTTPSource) Fetch(ctx context.Context, collection string) ([]byte, error) {
	url := s.baseURL + "/" + collection + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCollectionSize))
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	return data, nil
}

// internal/catalog/client.go
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

// Client fetches ProductDefinition documents from the upstream catalog
// collaborator. The collaborator is the only party that mutates definitions;
// this service only reads.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = timeout
	rc.Logger = logrus.StandardLogger()
	return &Client{http: rc, baseURL: baseURL}
}

// FetchDefinition pulls the raw document for one SKU.
func (c *Client) FetchDefinition(ctx context.Context, sku string) ([]byte, error) {
	url := fmt.Sprintf("%s/products/%s", c.baseURL, sku)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d for sku %s", resp.StatusCode, sku)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	return body, nil
}

package extract

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// maxDocumentSize caps downloads; a KRS is a few hundred kilobytes at most
const maxDocumentSize = 20 << 20

var userAgent = "jaku/1.0"

// Client downloads schedule documents from the academic portal
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new download client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads the document at rawURL and returns its bytes together with a file
// name derived from the URL path, used for format detection.
func (c *Client) Fetch(rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, u)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", u, err)
	}
	if len(data) > maxDocumentSize {
		return nil, "", fmt.Errorf("document at %s exceeds %d bytes", u, maxDocumentSize)
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = ""
	}
	return data, name, nil
}

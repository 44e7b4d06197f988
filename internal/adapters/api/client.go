// Package api implements ports.Backend over the StarPrint HTTP contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Deltawerks/starprint/internal/domain"
	"github.com/Deltawerks/starprint/internal/logging"
	"github.com/Deltawerks/starprint/internal/ports"
)

// Client talks to the StarPrint data service. It carries no overall request
// timeout: thumbnail generation and export are long-running and bounded only
// by the transport. Callers cancel through context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

var _ ports.Backend = (*Client)(nil)

// errorBody is the shape FastAPI-style services use for failures. The
// export flow reports "message" inside otherwise-successful bodies.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (e errorBody) text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		logging.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &ports.StatusError{Code: resp.StatusCode, Detail: eb.text()}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Status implements ports.Backend.
func (c *Client) Status(ctx context.Context) (domain.SessionStatus, error) {
	var status domain.SessionStatus
	err := c.do(ctx, http.MethodGet, "/api/status", nil, &status)
	return status, err
}

// SetPath implements ports.Backend. The response body is ignored for
// routing; only the status code matters.
func (c *Client) SetPath(ctx context.Context, path string) error {
	body := struct {
		Path string `json:"path"`
	}{Path: path}
	return c.do(ctx, http.MethodPost, "/api/set-path", body, nil)
}

// Categories implements ports.Backend.
func (c *Client) Categories(ctx context.Context) ([]*domain.CategoryNode, error) {
	var resp struct {
		Categories []*domain.CategoryNode `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Items implements ports.Backend.
func (c *Client) Items(ctx context.Context, path string) ([]domain.Item, error) {
	var resp struct {
		Items []domain.Item `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/items/"+url.PathEscape(path), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Search implements ports.Backend.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Item, error) {
	var resp struct {
		Results []domain.Item `json:"results"`
	}
	q := url.Values{"q": []string{query}}
	if err := c.do(ctx, http.MethodGet, "/api/search?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GenerateThumbnails implements ports.Backend.
func (c *Client) GenerateThumbnails(ctx context.Context, path string) (domain.ThumbnailReport, error) {
	body := struct {
		Path string `json:"path"`
	}{Path: path}
	var report domain.ThumbnailReport
	err := c.do(ctx, http.MethodPost, "/api/generate-thumbnails", body, &report)
	return report, err
}

// ThumbnailStatus implements ports.Backend.
func (c *Client) ThumbnailStatus(ctx context.Context, path string) (domain.ThumbnailStatus, error) {
	var status domain.ThumbnailStatus
	err := c.do(ctx, http.MethodGet, "/api/thumbnail-status/"+url.PathEscape(path), nil, &status)
	return status, err
}

// Export implements ports.Backend. A 2xx response with Status other than
// "success" is returned as-is; the caller decides how to surface it.
func (c *Client) Export(ctx context.Context, id string) (domain.ExportResult, error) {
	var result domain.ExportResult
	err := c.do(ctx, http.MethodGet, "/api/export/"+url.PathEscape(id), nil, &result)
	return result, err
}

// Download implements ports.Backend. Service-relative URLs are resolved
// against the base URL.
func (c *Client) Download(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	target := rawURL
	if strings.HasPrefix(rawURL, "/") {
		target = c.baseURL + rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Warn("download failed", zap.String("url", target), zap.Error(err))
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &ports.StatusError{Code: resp.StatusCode}
	}
	return resp.Body, nil
}

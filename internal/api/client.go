// Package api talks to the remote memo/document service. All calls are
// JSON over HTTP with a session cookie for authentication and a bounded
// timeout; failures come back as errors, never panics.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weeklog/internal/models"
)

const sessionCookieName = "session"

// Memo is the wire shape of a single memo as the server returns it. Dates
// may carry a time-of-day component; callers normalize before grouping.
type Memo struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// MemoAPI is the slice of the remote service the memo store depends on.
type MemoAPI interface {
	ListMemos(ctx context.Context, startDate, endDate string) ([]Memo, error)
	CreateMemo(ctx context.Context, date, text string) (Memo, error)
	DeleteMemo(ctx context.Context, id string) error
}

// Client holds the base URL and HTTP client configuration.
type Client struct {
	BaseURL      string
	SessionToken string
	HTTPClient   *http.Client
}

// NewClient creates a Client with a default request timeout. The session
// token may be empty; the server rejects unauthenticated calls itself.
func NewClient(baseURL, sessionToken string) *Client {
	return &Client{
		BaseURL:      baseURL,
		SessionToken: sessionToken,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// request makes an HTTP request to the API and decodes the JSON response
// into response when it is non-nil.
func (c *Client) request(ctx context.Context, method, endpoint string, body any, response any) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.SessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.SessionToken})
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %s", res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}
	return nil
}

// ListMemos fetches every memo dated within [startDate, endDate], inclusive.
func (c *Client) ListMemos(ctx context.Context, startDate, endDate string) ([]Memo, error) {
	endpoint := fmt.Sprintf("/api/memos?startDate=%s&endDate=%s",
		url.QueryEscape(startDate), url.QueryEscape(endDate))

	var resp struct {
		Memos []Memo `json:"memos"`
	}
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}
	return resp.Memos, nil
}

// CreateMemo stores a new memo on the server and returns the created record.
func (c *Client) CreateMemo(ctx context.Context, date, text string) (Memo, error) {
	body := map[string]string{"date": date, "text": text}

	var resp struct {
		Memo Memo `json:"memo"`
	}
	if err := c.request(ctx, http.MethodPost, "/api/memos", body, &resp); err != nil {
		return Memo{}, fmt.Errorf("failed to create memo: %w", err)
	}
	return resp.Memo, nil
}

// DeleteMemo removes a memo by id. The server answers 404 for unknown ids
// and for memos owned by another session user; both surface as errors.
func (c *Client) DeleteMemo(ctx context.Context, id string) error {
	endpoint := "/api/memos/" + url.PathEscape(id)
	if err := c.request(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return fmt.Errorf("failed to delete memo: %w", err)
	}
	return nil
}

// FetchDocument pulls the server's reconstruction of the full document.
func (c *Client) FetchDocument(ctx context.Context) (*models.Document, error) {
	doc := &models.Document{}
	if err := c.request(ctx, http.MethodGet, "/api/data", nil, doc); err != nil {
		return nil, fmt.Errorf("failed to fetch remote document: %w", err)
	}
	doc.Normalize()
	return doc, nil
}

// PushDocument uploads the local document. The server currently only
// acknowledges the payload; callers must not assume it was persisted.
func (c *Client) PushDocument(ctx context.Context, doc *models.Document) error {
	if err := c.request(ctx, http.MethodPost, "/api/data", doc, nil); err != nil {
		return fmt.Errorf("failed to push document: %w", err)
	}
	return nil
}

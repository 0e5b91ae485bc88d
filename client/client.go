// Package client is a Go client for the studyhub HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studyhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("studyhub: %d %s: %s", e.Status, e.Code, e.Message)
}

// SearchParams selects one browsing view.
type SearchParams struct {
	Kind         entity.Kind
	DepartmentID string
	Term         string
	SharedID     string
}

// SearchResult mirrors the ordered result set served by GET /resources/:kind.
type SearchResult struct {
	Records []entity.Resource
	Total   int
	Visible int
	Notices []entity.Notice
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Client talks to one studyhub deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client for baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "studyhub_client"))

	return c
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// Departments returns the department table.
func (c *Client) Departments(ctx context.Context) ([]entity.Department, error) {
	var out []entity.Department
	if err := c.get(ctx, "/departments", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Search reads one department's records of one kind.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	query := url.Values{}
	query.Set("dept", params.DepartmentID)
	if params.Term != "" {
		query.Set("q", params.Term)
	}
	if params.SharedID != "" {
		query.Set("shared", params.SharedID)
	}

	var raw struct {
		Records []json.RawMessage `json:"records"`
		Total   int               `json:"total"`
		Visible int               `json:"visible"`
		Notices []entity.Notice   `json:"notices"`
	}
	if err := c.get(ctx, "/resources/"+url.PathEscape(params.Kind.Collection()), query, &raw); err != nil {
		return nil, err
	}

	records := make([]entity.Resource, 0, len(raw.Records))
	for _, r := range raw.Records {
		res, err := entity.DecodeResource(r)
		if err != nil {
			return nil, err
		}
		records = append(records, res)
	}

	return &SearchResult{
		Records: records,
		Total:   raw.Total,
		Visible: raw.Visible,
		Notices: raw.Notices,
	}, nil
}

// NotesLink resolves the uploader's archive for a course.
func (c *Client) NotesLink(ctx context.Context, courseCode, uploader string) (string, error) {
	query := url.Values{}
	query.Set("course_code", courseCode)
	query.Set("uploader", uploader)

	return c.link(ctx, "/files/notes", query)
}

// PyqLink resolves the past-question archive for a course.
func (c *Client) PyqLink(ctx context.Context, courseCode string) (string, error) {
	query := url.Values{}
	query.Set("course_code", courseCode)

	return c.link(ctx, "/files/pyq", query)
}

// ShareLink returns the deep link to one record.
func (c *Client) ShareLink(ctx context.Context, kind entity.Kind, departmentID, resourceID string) (string, error) {
	query := url.Values{}
	query.Set("dept", departmentID)

	var out struct {
		URL string `json:"url"`
	}
	path := "/share/" + url.PathEscape(kind.Collection()) + "/" + url.PathEscape(resourceID)
	if err := c.get(ctx, path, query, &out); err != nil {
		return "", err
	}

	return out.URL, nil
}

func (c *Client) link(ctx context.Context, path string, query url.Values) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.get(ctx, path, query, &out); err != nil {
		return "", err
	}

	return out.URL, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrapf(err, "decode %s (status %d)", path, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		c.logger.DebugContext(ctx, "Request failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code),
		)

		return apiErr
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(err, "decode %s data", path)
	}

	return nil
}

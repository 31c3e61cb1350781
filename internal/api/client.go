// Package api is the HTTP client for the color and solution service.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_viewer"
)

// HTTPClient allows injecting mock HTTP clients for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestIDHeader carries the per-request ID to the server.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds response bodies; real payloads are tiny.
const maxBodyBytes = 64 * 1024

// FaceResponse is the body of GET /api/colors/:face. Older services send
// the face index as "count".
type FaceResponse struct {
	Face   *int   `json:"face,omitempty"`
	Count  *int   `json:"count,omitempty"`
	Colors string `json:"colors"`
}

// SolutionResponse is the body of GET /api/solution.
type SolutionResponse struct {
	Solution string `json:"solution" validate:"notation"`
}

// faceRecord is a FaceResponse after index resolution.
type faceRecord struct {
	Face   int    `validate:"min=0,max=5"`
	Colors string `validate:"facecolors"`
}

var apiValidate *validator.Validate

func init() {
	apiValidate = validator.New()
	if err := apiValidate.RegisterValidation("facecolors", validateFaceColors); err != nil {
		panic(err)
	}
	if err := apiValidate.RegisterValidation("notation", validateNotation); err != nil {
		panic(err)
	}
}

func validateFaceColors(fl validator.FieldLevel) bool {
	_, err := gocube.ParseFaceColors(fl.Field().String())
	return err == nil
}

func validateNotation(fl validator.FieldLevel) bool {
	_, err := gocube.ParseMoves(fl.Field().String())
	return err == nil
}

// Client fetches scan data and solutions. It satisfies gocube.ColorSource.
type Client struct {
	baseURL string
	http    HTTPClient
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = &http.Client{Timeout: d}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchFace fetches the scan data of one face. Transport failures and bad
// status codes wrap gocube.ErrNetwork; bad payloads wrap
// gocube.ErrMalformedColorData.
func (c *Client) FetchFace(ctx context.Context, index int) (gocube.FaceRecord, error) {
	var resp FaceResponse
	if err := c.get(ctx, "colors", "/api/colors/"+strconv.Itoa(index), &resp); err != nil {
		return gocube.FaceRecord{}, err
	}

	rec := faceRecord{Face: -1, Colors: resp.Colors}
	switch {
	case resp.Face != nil:
		rec.Face = *resp.Face
	case resp.Count != nil:
		rec.Face = *resp.Count
	}
	if err := apiValidate.Struct(rec); err != nil {
		return gocube.FaceRecord{}, fmt.Errorf("%w: face %d: %v", gocube.ErrMalformedColorData, index, err)
	}

	return gocube.FaceRecord{Face: rec.Face, Colors: rec.Colors}, nil
}

// FetchSolution fetches the solution for the cube the service last served.
// A solution with an unknown token wraps gocube.ErrInvalidNotation.
func (c *Client) FetchSolution(ctx context.Context) (string, error) {
	var resp SolutionResponse
	if err := c.get(ctx, "solution", "/api/solution", &resp); err != nil {
		return "", err
	}
	if err := apiValidate.Struct(resp); err != nil {
		return "", fmt.Errorf("%w: %v", gocube.ErrInvalidNotation, err)
	}
	return resp.Solution, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, out any) error {
	requestID := uuid.New().String()
	logger := c.logger.With("request_id", requestID, "endpoint", endpoint)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", gocube.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		observe(endpoint, "error", start)
		logger.Error("request failed", "error", err)
		return fmt.Errorf("%w: GET %s: %w", gocube.ErrNetwork, path, err)
	}
	defer resp.Body.Close()
	observe(endpoint, strconv.Itoa(resp.StatusCode), start)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", gocube.ErrNetwork, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.Warn("unexpected status", "status", resp.StatusCode)
		return fmt.Errorf("%w: GET %s: status %d", gocube.ErrNetwork, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", gocube.ErrMalformedColorData, path, err)
	}
	logger.Debug("request complete", "duration", time.Since(start))
	return nil
}

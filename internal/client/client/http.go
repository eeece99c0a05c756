package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"github.com/dmitrijs2005/mobiehub/internal/logging"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// Generic messages used when the backend does not explain a failure.
const (
	msgLoadMovies   = "failed to load movies"
	msgSearchMovies = "failed to search movies"
	msgLoadMovie    = "failed to load movie"
	msgSaveMovie    = "failed to save movie"
	msgDeleteMovie  = "failed to delete movie"
)

// HTTPClient talks to the movies REST API rooted at {apiBase}/movies.
type HTTPClient struct {
	moviesURL string
	http      *http.Client
	logger    logging.Logger
}

// NewHTTPClient validates apiBase and returns a client for it. A zero
// timeout leaves requests unbounded.
func NewHTTPClient(apiBase string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(apiBase))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", apiBase)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: missing host", apiBase)
	}

	return &HTTPClient{
		moviesURL: strings.TrimRight(u.String(), "/") + "/movies",
		http:      &http.Client{Timeout: timeout},
		logger:    logger.With("module", "http_client"),
	}, nil
}

func (c *HTTPClient) ListAll(ctx context.Context) ([]models.Movie, error) {
	var out []models.Movie
	if err := c.do(ctx, "list all", msgLoadMovies, http.MethodGet, "", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *HTTPClient) ListByStatus(ctx context.Context, status models.Status) ([]models.Movie, error) {
	var out []models.Movie
	path := "/all-movies-by-status/" + url.PathEscape(string(status))
	if err := c.do(ctx, "list by status", msgLoadMovies, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *HTTPClient) ListByName(ctx context.Context, name string) ([]models.Movie, error) {
	var out []models.Movie
	path := "/all-movies-by-name/" + url.PathEscape(name)
	if err := c.do(ctx, "list by name", msgSearchMovies, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *HTTPClient) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	var out models.Movie
	path := "/movie/" + strconv.Itoa(id)
	if err := c.do(ctx, "get by id", msgLoadMovie, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts m and returns the created record, or nil when the backend
// answers with an empty body.
func (c *HTTPClient) Create(ctx context.Context, m models.MovieRequest) (*models.Movie, error) {
	var out *models.Movie
	if err := c.do(ctx, "create", msgSaveMovie, http.MethodPost, "", m, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update puts m for id and returns the updated record, or nil when the
// backend answers with an empty body.
func (c *HTTPClient) Update(ctx context.Context, id int, m models.MovieRequest) (*models.Movie, error) {
	var out *models.Movie
	path := "/" + strconv.Itoa(id)
	if err := c.do(ctx, "update", msgSaveMovie, http.MethodPut, path, m, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int) error {
	path := "/" + strconv.Itoa(id)
	return c.do(ctx, "delete", msgDeleteMovie, http.MethodDelete, path, nil, nil)
}

// do performs one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded response unless the body is empty.
func (c *HTTPClient) do(ctx context.Context, op, fallback, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Op: op, Message: fallback, Err: err}
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.moviesURL+path, payload)
	if err != nil {
		return &RequestError{Op: op, Message: fallback, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With("op", op, "request_id", reqID)
	start := time.Now()
	log.Debug(ctx, "request", "method", method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &RequestError{Op: op, Message: fallback, Err: errors.Join(ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		re := &RequestError{Op: op, Status: resp.StatusCode, Message: backendMessage(raw, fallback)}
		if resp.StatusCode == http.StatusNotFound {
			re.Err = ErrNotFound
		}
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", re.Message)
		return re
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Op: op, Status: resp.StatusCode, Message: fallback, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestError{Op: op, Status: resp.StatusCode, Message: fallback, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// backendMessage extracts "message" (or, failing that, "error") from a JSON
// error body. Anything else yields fallback.
func backendMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	if m := strings.TrimSpace(body.Message); m != "" {
		return m
	}
	if m := strings.TrimSpace(body.Error); m != "" {
		return m
	}
	return fallback
}

func nonNil(s []models.Movie) []models.Movie {
	if s == nil {
		return []models.Movie{}
	}
	return s
}

// Package api is the client for the site's backend REST API: job and
// product listings, and job application submission.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/selamsoft/selam-web/internal/schemas"
	"github.com/selamsoft/selam-web/internal/types"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout is the default deadline for one API call.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "SelamWeb/1.0"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// Options configures the client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client // optional; a client with Timeout is built when nil
}

// Client talks to {BaseURL}/api/v1.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	http      *http.Client
	lists     singleflight.Group
}

// NewClient creates a client for the given base URL.
func NewClient(opts Options) (*Client, error) {
	parsed, err := url.Parse(opts.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", opts.BaseURL)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
		http:      hc,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(resource string) string {
	return c.baseURL + "/api/v1/" + resource
}

// List is a normalized list response.
type List[T any] struct {
	Items   []T
	Shape   Shape
	Skipped int // records dropped for failing schema validation or decoding
}

// ListJobs fetches GET /api/v1/jobs.
func (c *Client) ListJobs(ctx context.Context) (*List[types.Job], error) {
	return fetchList[types.Job](ctx, c, "jobs", schemas.KindJob)
}

// ListProducts fetches GET /api/v1/products.
func (c *Client) ListProducts(ctx context.Context) (*List[types.Product], error) {
	return fetchList[types.Product](ctx, c, "products", schemas.KindProduct)
}

// fetchList reads one list resource. The key of the wrapped shape is the
// resource name itself ({"jobs": [...]}).
func fetchList[T any](ctx context.Context, c *Client, resource string, kind schemas.Kind) (*List[T], error) {
	body, err := c.getShared(ctx, resource)
	if err != nil {
		return nil, err
	}

	parsed, err := Normalize(body, resource)
	if err != nil {
		return nil, logged(transportError("list "+resource, c.endpoint(resource), "Failed to fetch "+resource, err))
	}
	if parsed.Shape == ShapeUnrecognized {
		log.Printf("[api] %s: unrecognized response shape, treating as empty", resource)
	}

	list := &List[T]{Items: make([]T, 0, len(parsed.Items)), Shape: parsed.Shape}
	for i, raw := range parsed.Items {
		if err := schemas.ValidateRecord(kind, raw); err != nil {
			log.Printf("[api] %s[%d]: skipping record: %s", resource, i, summarize(err))
			list.Skipped++
			continue
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			log.Printf("[api] %s[%d]: skipping record: %v", resource, i, err)
			list.Skipped++
			continue
		}
		list.Items = append(list.Items, item)
	}
	return list, nil
}

func summarize(err error) string {
	if verr, ok := err.(*schemas.ValidationError); ok {
		return verr.Summary()
	}
	return err.Error()
}

// getShared collapses concurrent reads of the same resource into one
// request. The shared request runs under its own deadline so one caller
// going away does not fail the others; each caller still returns as soon
// as its own context ends.
func (c *Client) getShared(ctx context.Context, resource string) ([]byte, error) {
	ch := c.lists.DoChan(resource, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.get(fetchCtx, resource)
	})

	select {
	case <-ctx.Done():
		return nil, transportError("list "+resource, c.endpoint(resource), "Failed to fetch "+resource, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) get(ctx context.Context, resource string) ([]byte, error) {
	op := "list " + resource
	target := c.endpoint(resource)
	message := "Failed to fetch " + resource

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, logged(transportError(op, target, message, err))
	}
	c.setHeaders(req)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[api] GET %s failed after %v: %v", target, time.Since(start), err)
		return nil, transportError(op, target, message, err)
	}
	defer func() { _ = resp.Body.Close() }()
	log.Printf("[api] GET %s -> %d in %v", target, resp.StatusCode, time.Since(start))

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, statusError(op, target, message, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, logged(transportError(op, target, message, err))
	}
	return body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
}

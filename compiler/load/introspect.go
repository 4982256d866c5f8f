package load

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/PuerkitoBio/rehttp"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/gqlapi"
)

// Introspection client defaults.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetries    = 3
	defaultRetryDelay = 500 * time.Millisecond
	defaultMaxDelay   = 5 * time.Second
)

// Introspector fetches the schema of a running GraphQL API with the
// standard introspection query.
type Introspector struct {
	client   *http.Client
	headers  http.Header
	timeout  time.Duration
	retries  int
	delay    time.Duration
	maxDelay time.Duration
}

// IntrospectOption configures an Introspector.
type IntrospectOption func(*Introspector)

// WithHeader adds a request header, e.g. for authorization.
func WithHeader(key, value string) IntrospectOption {
	return func(i *Introspector) {
		i.headers.Add(key, value)
	}
}

// WithTimeout bounds a whole introspection, retries included.
func WithTimeout(d time.Duration) IntrospectOption {
	return func(i *Introspector) {
		i.timeout = d
	}
}

// WithRetries sets how many times a failed request is retried. Requests
// are retried on temporary network errors and on 502, 503 and 504.
func WithRetries(n int) IntrospectOption {
	return func(i *Introspector) {
		i.retries = max(n, 0)
	}
}

// WithBackoff sets the base and maximum delay of the jittered exponential
// backoff between retries.
func WithBackoff(base, maxDelay time.Duration) IntrospectOption {
	return func(i *Introspector) {
		i.delay, i.maxDelay = base, maxDelay
	}
}

// WithHTTPClient sets the client whose transport is wrapped with retries.
func WithHTTPClient(c *http.Client) IntrospectOption {
	return func(i *Introspector) {
		if c != nil {
			i.client = c
		}
	}
}

// NewIntrospector returns an Introspector configured with opts.
func NewIntrospector(opts ...IntrospectOption) *Introspector {
	i := &Introspector{
		client:   &http.Client{},
		headers:  make(http.Header),
		timeout:  DefaultTimeout,
		retries:  DefaultRetries,
		delay:    defaultRetryDelay,
		maxDelay: defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(i)
	}
	base := i.client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client := *i.client
	client.Transport = rehttp.NewTransport(
		base,
		rehttp.RetryAll(
			rehttp.RetryMaxRetries(i.retries),
			rehttp.RetryAny(
				rehttp.RetryTemporaryErr(),
				rehttp.RetryStatuses(http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout),
			),
		),
		rehttp.ExpJitterDelay(i.delay, i.maxDelay),
	)
	i.client = &client
	return i
}

// NormalizeURL prefixes url with "http://" when it has no scheme.
func NormalizeURL(url string) string {
	if strings.Contains(url, "://") {
		return url
	}
	return "http://" + url
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data *struct {
		Schema *IntrospectionSchema `json:"__schema"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// Introspect runs the introspection query against url and converts the
// result into a raw schema document.
func (i *Introspector) Introspect(ctx context.Context, url string) (*ast.SchemaDocument, error) {
	url = NormalizeURL(url)
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	body, err := json.Marshal(graphqlRequest{Query: introspection.Query})
	if err != nil {
		return nil, gqlapi.NewIntrospectionError(url, 0, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, gqlapi.NewIntrospectionError(url, 0, err)
	}
	for key, values := range i.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, gqlapi.NewIntrospectionError(url, 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gqlapi.NewIntrospectionError(url, resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, gqlapi.NewIntrospectionError(url, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var out graphqlResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, gqlapi.NewIntrospectionError(url, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	if len(out.Errors) > 0 {
		msgs := lo.Map(out.Errors, func(e graphqlError, _ int) string { return e.Message })
		return nil, gqlapi.NewIntrospectionError(url, resp.StatusCode, fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; ")))
	}
	if out.Data == nil || out.Data.Schema == nil {
		return nil, gqlapi.NewIntrospectionError(url, resp.StatusCode, errors.New("response has no __schema"))
	}
	return Document(out.Data.Schema, url), nil
}

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"biodex/internal/debug"
	"biodex/internal/domain"
	appErrors "biodex/internal/errors"
)

const (
	restPathPrefix   = "/rest/v1/"
	defaultRESTLimit = 10
	defaultRESTBurst = 5
)

// restClient speaks the PostgREST dialect: tables under /rest/v1, filters as
// column=eq.value query parameters, and Prefer: return=representation on
// writes.
type restClient struct {
	base    *url.URL
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// RESTOption customises a REST client.
type RESTOption func(*restClient)

// WithRateLimit caps outgoing requests per second. A non-positive limit
// disables limiting.
func WithRateLimit(perSecond float64, burst int) RESTOption {
	return func(rc *restClient) {
		if perSecond <= 0 {
			rc.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		rc.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewRESTClient returns a client for the service at baseURL authenticated
// with apiKey.
func NewRESTClient(baseURL, apiKey string, opts ...RESTOption) (Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, configError("rest url is empty (set rest.url)", nil)
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, configError(fmt.Sprintf("invalid rest url %q", baseURL), err)
	}
	c := &restClient{
		base:    u,
		apiKey:  strings.TrimSpace(apiKey),
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(defaultRESTLimit), defaultRESTBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *restClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// serviceError is the error body PostgREST returns.
type serviceError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (c *restClient) endpoint(table string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + restPathPrefix + table
	u.RawQuery = query.Encode()
	return u.String()
}

// do sends one request and decodes a JSON response into out (when non-nil).
func (c *restClient) do(ctx context.Context, op, method, table string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return appErrors.New(appErrors.CodeRemoteFailed, err.Error(), fmt.Errorf("%s: %w", op, err))
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.New(appErrors.CodeDecodeFailed, "encode request", fmt.Errorf("%s: %w", op, err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(table, query), reader)
	if err != nil {
		return appErrors.New(appErrors.CodeRemoteFailed, err.Error(), fmt.Errorf("%s: %w", op, err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	debug.Logf("store: %s %s", method, req.URL.Redacted())
	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.New(appErrors.CodeRemoteFailed, err.Error(), fmt.Errorf("%s: %w", op, err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.New(appErrors.CodeRemoteFailed, err.Error(), fmt.Errorf("%s: read body: %w", op, err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return classifyStatus(op, resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return appErrors.New(appErrors.CodeDecodeFailed, "unexpected response from data service", fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

func classifyStatus(op string, status int, body []byte) error {
	var svc serviceError
	_ = json.Unmarshal(body, &svc)
	cause := fmt.Errorf("%s: http %d", op, status)
	if status == http.StatusNotFound {
		return appErrors.New(appErrors.CodeNotFound, svc.Message, fmt.Errorf("%w: %w", cause, ErrNotFound))
	}
	return appErrors.New(appErrors.CodeRemoteFailed, svc.Message, cause)
}

func eq(v string) string { return "eq." + v }

func (c *restClient) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	q := url.Values{"select": {"*"}, "order": {"id.asc"}}
	species := []domain.Species{}
	if err := c.do(ctx, "list species", http.MethodGet, tableSpecies, q, nil, &species); err != nil {
		return nil, err
	}
	return species, nil
}

func (c *restClient) GetSpecies(ctx context.Context, id int64) (domain.Species, error) {
	q := url.Values{"select": {"*"}, "id": {eq(strconv.FormatInt(id, 10))}}
	var rows []domain.Species
	if err := c.do(ctx, "get species", http.MethodGet, tableSpecies, q, nil, &rows); err != nil {
		return domain.Species{}, err
	}
	if len(rows) == 0 {
		return domain.Species{}, notFound("species", id)
	}
	return rows[0], nil
}

type speciesInsert struct {
	Author uuid.UUID `json:"author"`
	domain.SpeciesInput
}

func (c *restClient) CreateSpecies(ctx context.Context, author uuid.UUID, in domain.SpeciesInput) (domain.Species, error) {
	if err := in.Validate(); err != nil {
		return domain.Species{}, err
	}
	var rows []domain.Species
	body := speciesInsert{Author: author, SpeciesInput: in}
	if err := c.do(ctx, "create species", http.MethodPost, tableSpecies, nil, body, &rows); err != nil {
		return domain.Species{}, err
	}
	if len(rows) == 0 {
		return domain.Species{}, appErrors.New(appErrors.CodeDecodeFailed, "data service returned no row", nil)
	}
	return rows[0], nil
}

func (c *restClient) UpdateSpecies(ctx context.Context, id int64, in domain.SpeciesInput) ([]domain.Species, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	q := url.Values{"id": {eq(strconv.FormatInt(id, 10))}}
	rows := []domain.Species{}
	if err := c.do(ctx, "update species", http.MethodPatch, tableSpecies, q, in, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *restClient) DeleteSpecies(ctx context.Context, id int64) error {
	q := url.Values{"id": {eq(strconv.FormatInt(id, 10))}}
	return c.do(ctx, "delete species", http.MethodDelete, tableSpecies, q, nil, nil)
}

func (c *restClient) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	q := url.Values{"select": {"*"}, "order": {"display_name.asc"}}
	profiles := []domain.Profile{}
	if err := c.do(ctx, "list profiles", http.MethodGet, tableProfiles, q, nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *restClient) GetProfile(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	q := url.Values{"select": {"*"}, "id": {eq(id.String())}}
	var rows []domain.Profile
	if err := c.do(ctx, "get profile", http.MethodGet, tableProfiles, q, nil, &rows); err != nil {
		return domain.Profile{}, err
	}
	if len(rows) == 0 {
		return domain.Profile{}, notFound("profile", id)
	}
	return rows[0], nil
}

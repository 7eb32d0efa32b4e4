package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/utils"
)

const (
	propertiesPath = "properties"
	unitsPath      = "units"
	leasesPath     = "leases"
	tenantsPath    = "tenants"
)

// HTTPClient talks to the REST API. Collection paths are resolved under
// BaseURL with a trailing slash, e.g. {base}/units/12/.
type HTTPClient struct {
	BaseURL *url.URL
	HTTP    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient parses baseURL and builds a client with the given timeout.
// A non-positive timeout falls back to 30 seconds.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid baseURL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid baseURL %q: scheme and host required", baseURL)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		BaseURL: parsed,
		HTTP:    &http.Client{Timeout: timeout},
	}, nil
}

/* ---------- properties ---------- */

func (c *HTTPClient) ListProperties(ctx context.Context) ([]models.Property, error) {
	raw, err := c.getRaw(ctx, propertiesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("ListProperties error: %w", err)
	}
	return decodeList[models.Property](raw)
}

func (c *HTTPClient) GetProperty(ctx context.Context, id models.ID) (*models.Property, error) {
	var p models.Property
	if err := c.doRequest(ctx, http.MethodGet, itemPath(propertiesPath, id), nil, nil, &p); err != nil {
		return nil, fmt.Errorf("GetProperty error: %w", err)
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProperty(ctx context.Context, id models.ID) error {
	if err := c.doRequest(ctx, http.MethodDelete, itemPath(propertiesPath, id), nil, nil, nil); err != nil {
		return fmt.Errorf("DeleteProperty error: %w", err)
	}
	return nil
}

/* ---------- units ---------- */

func (c *HTTPClient) ListUnits(ctx context.Context, filter *UnitFilter) ([]models.Unit, error) {
	var query url.Values
	if filter != nil && filter.PropertyID.Valid {
		query = url.Values{"property": []string{filter.PropertyID.String()}}
	}
	raw, err := c.getRaw(ctx, unitsPath, query)
	if err != nil {
		return nil, fmt.Errorf("ListUnits error: %w", err)
	}
	return decodeList[models.Unit](raw)
}

func (c *HTTPClient) UpdateUnit(ctx context.Context, id models.ID, payload UnitPayload) (*models.Unit, error) {
	var u models.Unit
	if err := c.doRequest(ctx, http.MethodPut, itemPath(unitsPath, id), nil, payload, &u); err != nil {
		return nil, fmt.Errorf("UpdateUnit error: %w", err)
	}
	return &u, nil
}

/* ---------- leases ---------- */

func (c *HTTPClient) ListLeases(ctx context.Context) ([]models.Lease, error) {
	raw, err := c.getRaw(ctx, leasesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("ListLeases error: %w", err)
	}
	return decodeList[models.Lease](raw)
}

func (c *HTTPClient) CreateLease(ctx context.Context, payload LeasePayload) (*models.Lease, error) {
	var l models.Lease
	if err := c.doRequest(ctx, http.MethodPost, leasesPath, nil, payload, &l); err != nil {
		return nil, fmt.Errorf("CreateLease error: %w", err)
	}
	return &l, nil
}

/* ---------- tenants ---------- */

func (c *HTTPClient) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	raw, err := c.getRaw(ctx, tenantsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("ListTenants error: %w", err)
	}
	return decodeList[models.Tenant](raw)
}

/* ---------- internals ---------- */

func itemPath(collection string, id models.ID) string {
	return collection + "/" + id.String()
}

func (c *HTTPClient) getRaw(ctx context.Context, reqPath string, query url.Values) ([]byte, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, reqPath, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// doRequest builds, executes and decodes a single request. There is no
// retry; reload is always operator-triggered.
func (c *HTTPClient) doRequest(ctx context.Context, method, reqPath string, query url.Values, body any, out any) error {
	u := *c.BaseURL
	u.Path = path.Join(c.BaseURL.Path, reqPath) + "/"
	u.RawQuery = query.Encode()

	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	utils.Logger.WithFields(logrus.Fields{
		"method":     method,
		"url":        u.String(),
		"request_id": requestID,
	}).Debug("API request")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return handleHTTPError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleHTTPError reads the body for a "detail" or "error" message.
func handleHTTPError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(bodyBytes, &apiErr); err == nil {
		msg = apiErr.Detail
		if msg == "" {
			msg = apiErr.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(bodyBytes))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: msg}
}

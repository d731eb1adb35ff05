// Package upstream talks to the proposes REST API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/metrics"
)

// Endpoint names used in logs and metrics.
const (
	EndpointProposes     = "proposes"
	EndpointPropose      = "propose"
	EndpointSuppliers    = "users-supplier"
	EndpointUpdateStatus = "update-status"
	EndpointUsers        = "users"

	EndpointNotifications    = "notifications"
	EndpointNotification     = "notification"
	EndpointReadNotification = "read-notification"
	EndpointNotifyUser       = "user-notification"
)

const maxErrorBody = 4096

// ErrUnauthorized is returned when the API rejects the service token.
var ErrUnauthorized = domain.ErrUpstreamAuth

// APIError is a non-2xx answer from the API.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Unwrap classifies the failure for errors.Is.
func (e *APIError) Unwrap() []error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return []error{domain.ErrUpstream, ErrUnauthorized}
	case http.StatusNotFound:
		return []error{domain.ErrUpstream, notFound(e.Endpoint)}
	default:
		return []error{domain.ErrUpstream}
	}
}

func notFound(endpoint string) error {
	switch endpoint {
	case EndpointNotification, EndpointReadNotification:
		return domain.ErrNotificationNotFound
	case EndpointUsers, EndpointNotifyUser:
		return domain.ErrUserNotFound
	default:
		return domain.ErrProposeNotFound
	}
}

// Client is a JSON client for the proposes API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	metrics *metrics.Metrics
}

// NewClient creates a Client. token is sent as a Bearer credential when set.
func NewClient(baseURL, token string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
	}
}

// ListProposes fetches one page of proposes for the given list query.
func (c *Client) ListProposes(ctx context.Context, params url.Values) (*domain.ProposePage, error) {
	var page domain.ProposePage
	if err := c.do(ctx, EndpointProposes, http.MethodGet, "/proposes", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPropose fetches a single propose.
func (c *Client) GetPropose(ctx context.Context, id int64) (*domain.Propose, error) {
	var propose domain.Propose
	path := "/proposes/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, EndpointPropose, http.MethodGet, path, nil, nil, &propose); err != nil {
		return nil, err
	}
	return &propose, nil
}

// ListSuppliers returns the users that can be assigned to a propose.
func (c *Client) ListSuppliers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, EndpointSuppliers, http.MethodGet, "/users-supplier", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type updateStatusRequest struct {
	IDPropose     int64  `json:"idPropose"`
	ProposeStatus string `json:"proposeStatus"`
}

// UpdateProposeStatus moves a propose to another status.
func (c *Client) UpdateProposeStatus(ctx context.Context, id int64, status string) error {
	body := updateStatusRequest{IDPropose: id, ProposeStatus: status}
	return c.do(ctx, EndpointUpdateStatus, http.MethodPut, "/proposes/update-status", nil, body, nil)
}

// ListUsers fetches one page of the user directory. Only page and searchTerm
// are meaningful to the endpoint.
func (c *Client) ListUsers(ctx context.Context, params url.Values) (*domain.UserPage, error) {
	var page domain.UserPage
	if err := c.do(ctx, EndpointUsers, http.MethodGet, "/users", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListNotifications returns the notifications addressed to the service user.
func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.do(ctx, EndpointNotifications, http.MethodGet, "/notification", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNotification fetches one notification.
func (c *Client) GetNotification(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	path := "/notification/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, EndpointNotification, http.MethodGet, path, nil, nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkNotificationRead marks a recipient row as read.
func (c *Client) MarkNotificationRead(ctx context.Context, recipientID int64) error {
	path := "/notification/" + strconv.FormatInt(recipientID, 10)
	return c.do(ctx, EndpointReadNotification, http.MethodPut, path, nil, nil, nil)
}

type notifyUserRequest struct {
	Description string `json:"notificationDescription"`
	UserID      int64  `json:"userId"`
}

// NotifyUser sends a notification to a single user.
func (c *Client) NotifyUser(ctx context.Context, userID int64, message string) error {
	body := notifyUserRequest{Description: message, UserID: userID}
	return c.do(ctx, EndpointNotifyUser, http.MethodPost, "/user-notification", nil, body, nil)
}

func (c *Client) do(
	ctx context.Context,
	endpoint, method, path string,
	query url.Values,
	body, out any,
) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", endpoint, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set(middleware.RequestIDHeader, requestID(ctx))

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.observe(endpoint, outcomeOf(err), elapsed)
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s request: %w", endpoint, err)
		}
		if isTimeout(err) && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		slog.Warn("upstream request failed",
			"endpoint", endpoint,
			"error", err,
			"duration", elapsed,
		)
		return fmt.Errorf("%w: %s request: %w", domain.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.observe(endpoint, strconv.Itoa(resp.StatusCode), elapsed)
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(slurp)),
		}
		slog.Warn("upstream returned error status",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"duration", elapsed,
		)
		return apiErr
	}
	c.observe(endpoint, "ok", elapsed)

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", domain.ErrUpstream, endpoint, err)
	}

	slog.Debug("upstream request completed", "endpoint", endpoint, "duration", elapsed)
	return nil
}

func (c *Client) observe(endpoint, outcome string, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(endpoint, outcome, elapsed)
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return "timeout"
	default:
		return "error"
	}
}

// requestID propagates the inbound request id, or mints one for background calls.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

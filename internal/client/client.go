package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/httputil"
)

// Client talks to the tempo server's REST API. It implements
// store.Remote; the store layers snapshot bookkeeping on top.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// New creates an API client. The token is sent as a bearer credential on
// every request.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// do sends one request and decodes the response into out (when out is
// non-nil). Non-2xx responses are decoded as RFC 7807 problem documents
// and mapped onto the domain error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorFromResponse turns a problem+json response into a wrapped domain
// error so callers can errors.Is against the same sentinels the server
// uses.
func (c *Client) errorFromResponse(method, path string, resp *http.Response) error {
	var problem httputil.ProblemDetail
	detail := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil && problem.Detail != "" {
		detail = problem.Detail
	}

	c.logger.Debug("request failed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"detail", detail,
	)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = domain.ErrValidation
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusConflict:
		sentinel = domain.ErrConflict
	default:
		return fmt.Errorf("%s %s: server returned %d: %s", method, path, resp.StatusCode, detail)
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

// FetchState retrieves the full dataset in one request.
func (c *Client) FetchState(ctx context.Context) (*models.State, error) {
	var state models.State
	if err := c.do(ctx, http.MethodGet, "/api/state", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error) {
	var folder models.Folder
	if err := c.do(ctx, http.MethodPost, "/api/folders", req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *Client) UpdateFolder(ctx context.Context, id string, req *models.UpdateFolderRequest) (*models.Folder, error) {
	var folder models.Folder
	if err := c.do(ctx, http.MethodPatch, "/api/folders/"+id, req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/folders/"+id, nil, nil)
}

func (c *Client) CreateModule(ctx context.Context, req *models.CreateModuleRequest) (*models.Module, error) {
	var module models.Module
	if err := c.do(ctx, http.MethodPost, "/api/modules", req, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) UpdateModule(ctx context.Context, id string, req *models.UpdateModuleRequest) (*models.Module, error) {
	var module models.Module
	if err := c.do(ctx, http.MethodPatch, "/api/modules/"+id, req, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) DeleteModule(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/modules/"+id, nil, nil)
}

func (c *Client) CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPost, "/api/entries", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id string, req *models.UpdateEntryRequest) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPatch, "/api/entries/"+id, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/entries/"+id, nil, nil)
}

// UpdateProfile patches display name and weekly target. Not part of
// store.Remote; callers push the result into the store with SetProfile.
func (c *Client) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodPatch, "/api/profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

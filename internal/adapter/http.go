// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/ncm-lead/internal/logger"
	"github.com/MKhiriev/ncm-lead/internal/utils"
	"github.com/MKhiriev/ncm-lead/models"
)

type httpFlowClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPFlowClient returns a [FlowClient] for the server at address. A
// missing scheme defaults to http.
func NewHTTPFlowClient(address string, timeout time.Duration, logger *logger.Logger) (FlowClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpFlowClient{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpFlowClient) postJSON(ctx context.Context, path string, body, result any) error {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}

	c.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("request done")
	return mapHTTPError(resp)
}

func (c *httpFlowClient) Lookup(ctx context.Context, ncm string) error {
	return c.postJSON(ctx, "/consultar", models.LookupRequest{Ncm: ncm}, nil)
}

func (c *httpFlowClient) SaveLead(ctx context.Context, req models.RegisterRequest) error {
	return c.postJSON(ctx, "/salvar-lead", req, nil)
}

func (c *httpFlowClient) Login(ctx context.Context, req models.LoginRequest) (models.UserSummary, error) {
	var resp models.LoginResponse
	if err := c.postJSON(ctx, "/api/login", req, &resp); err != nil {
		return models.UserSummary{}, err
	}
	return resp.User, nil
}

func (c *httpFlowClient) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.ProfileUpdateResponse, error) {
	var resp models.ProfileUpdateResponse
	if err := c.postJSON(ctx, "/api/perfil", req, &resp); err != nil {
		return models.ProfileUpdateResponse{}, err
	}
	return resp, nil
}

func (c *httpFlowClient) Page(ctx context.Context, path string) (PageResult, error) {
	resp, err := c.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return PageResult{}, fmt.Errorf("GET %s: %w", path, err)
	}

	result := PageResult{Status: resp.StatusCode()}
	if resp.StatusCode() >= http.StatusMultipleChoices && resp.StatusCode() < http.StatusBadRequest {
		result.Location = resp.Header().Get("Location")
		return result, nil
	}
	return result, mapHTTPError(resp)
}

func (c *httpFlowClient) Logout(ctx context.Context) error {
	page, err := c.Page(ctx, "/logout")
	if err != nil {
		return err
	}
	if !page.Redirected() {
		return fmt.Errorf("logout answered %d without redirect", page.Status)
	}
	return nil
}

func (c *httpFlowClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := c.client.R().SetContext(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("GET /api/version: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}
	return info, nil
}

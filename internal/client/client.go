// Package client 访问记录服务的只读 HTTP 客户端
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"customer-matrix/internal/dto"
	"customer-matrix/pkg/response"
)

// APIError 服务端返回的错误响应
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client 记录服务客户端
type Client struct {
	baseURL string
	http    *http.Client
}

// New 创建客户端；httpClient 为 nil 时使用 10 秒超时的默认客户端
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListLocations GET /api/locations
func (c *Client) ListLocations(ctx context.Context) ([]dto.LocationResponse, error) {
	var out []dto.LocationResponse
	if err := c.get(ctx, "/api/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBases GET /api/bases
func (c *Client) ListBases(ctx context.Context, populate bool) ([]dto.BaseResponse, error) {
	var out []dto.BaseResponse
	if err := c.get(ctx, "/api/bases", populateQuery(populate), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUnits GET /api/units
func (c *Client) ListUnits(ctx context.Context, populate bool) ([]dto.UnitResponse, error) {
	var out []dto.UnitResponse
	if err := c.get(ctx, "/api/units", populateQuery(populate), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func populateQuery(populate bool) url.Values {
	if !populate {
		return nil
	}
	return url.Values{"populate": []string{"true"}}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("构造请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("请求 %s 失败: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb response.ErrorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Code = eb.Code
			apiErr.Message = eb.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}

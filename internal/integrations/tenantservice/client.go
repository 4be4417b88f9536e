package tenantservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Client клиент для работы с TenantService
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	log        Logger
}

// NewClient создает новый экземпляр клиента TenantService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cb:  newCircuitBreaker("tenantservice", log),
		log: log,
	}
}

// GetTenant получает профиль жильца вместе с его типом.
// При разомкнутом circuit breaker сразу возвращает ErrServiceUnavailable.
func (c *Client) GetTenant(ctx context.Context, tenantID int64) (*Tenant, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.getTenant(ctx, tenantID)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Error("TenantService circuit open, tenant_id=%d: %v", tenantID, err)
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
		return nil, err
	}

	return result.(*Tenant), nil
}

func (c *Client) getTenant(ctx context.Context, tenantID int64) (*Tenant, error) {
	url := fmt.Sprintf("%s/internal/tenants/%d", c.baseURL, tenantID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrTenantNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var tenant Tenant
	if err := json.NewDecoder(resp.Body).Decode(&tenant); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &tenant, nil
}

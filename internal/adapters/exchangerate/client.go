// Package exchangerate is a client for the exchangerate-api.com v6 API.
package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public v6 endpoint.
	DefaultBaseURL = "https://v6.exchangerate-api.com/v6"
	defaultTimeout = 10 * time.Second

	resultError           = "error"
	errorTypeUnsupported  = "unsupported-code"
	msgFetchRatesFailed   = "Failed to fetch exchange rates"
	msgConvertFailed      = "Failed to convert currency"
	msgCurrencyNotSupport = "Currency code not supported"
)

// Config holds the settings of a Client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client calls the exchange rate provider over HTTP.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

var _ portssvc.ExchangeRateProvider = (*Client)(nil)

// New creates a client from cfg, falling back to the public endpoint and a 10s timeout.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  cfg.APIKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// providerResponse covers both the latest and the pair endpoints.
type providerResponse struct {
	Result           string                     `json:"result"`
	ErrorType        string                     `json:"error-type"`
	BaseCode         string                     `json:"base_code"`
	ConversionRates  map[string]decimal.Decimal `json:"conversion_rates"`
	ConversionResult decimal.Decimal            `json:"conversion_result"`
}

// statusError is returned by doJSON for non-2xx responses whose body could still be decoded.
type statusError struct {
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// FetchRateTable calls GET {base}/{key}/latest/{BASE}.
func (c *Client) FetchRateTable(ctx context.Context, base string) (domain.RateTable, error) {
	var out providerResponse
	if err := c.doJSON(ctx, &out, "latest", base); err != nil {
		return domain.RateTable{}, apperrors.NewRateFetchError(msgFetchRatesFailed, err)
	}
	if out.Result == resultError {
		return domain.RateTable{}, apperrors.NewRateFetchError(msgFetchRatesFailed, fmt.Errorf("provider error: %s", out.ErrorType))
	}

	table := domain.RateTable{Base: out.BaseCode, Rates: out.ConversionRates}
	if table.Base == "" {
		table.Base = base
	}
	if table.Rates == nil {
		table.Rates = map[string]decimal.Decimal{}
	}
	return table, nil
}

// ConvertAmount calls GET {base}/{key}/pair/{FROM}/{TO}/{AMOUNT}.
func (c *Client) ConvertAmount(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	var out providerResponse
	err := c.doJSON(ctx, &out, "pair", from, to, amount.String())

	// The provider reports unknown codes in the body, sometimes with a non-2xx status.
	if out.Result == resultError {
		if out.ErrorType == errorTypeUnsupported {
			return decimal.Zero, apperrors.NewUnsupportedCurrencyError(msgCurrencyNotSupport)
		}
		return decimal.Zero, apperrors.NewConversionError(msgConvertFailed, fmt.Errorf("provider error: %s", out.ErrorType))
	}
	if err != nil {
		return decimal.Zero, apperrors.NewConversionError(msgConvertFailed, err)
	}
	return out.ConversionResult, nil
}

func (c *Client) doJSON(ctx context.Context, out any, segments ...string) error {
	fullURL, err := c.buildURL(segments...)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	decodeErr := json.Unmarshal(respBody, out)
	if resp.StatusCode >= 300 {
		return &statusError{StatusCode: resp.StatusCode}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	return nil
}

func (c *Client) buildURL(segments ...string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("missing API key")
	}
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, url.PathEscape(c.APIKey))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	fullURL, err := url.JoinPath(c.BaseURL, escaped...)
	if err != nil {
		return "", fmt.Errorf("invalid base_url: %w", err)
	}
	return fullURL, nil
}

package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"weddingapi/internal/infra"
)

// ErrMissingAccessToken indicates that no access token is configured.
var ErrMissingAccessToken = errors.New("mercadopago: access token is required")

// Credentials are the gateway secrets needed for API calls.
type Credentials struct {
	AccessToken     string
	PublicKey       string
	NotificationURL string
}

// CredentialSource supplies gateway credentials. Implementations read the
// current site configuration on every call so a rotated token takes effect
// without a restart.
type CredentialSource interface {
	GatewayCredentials(ctx context.Context) (Credentials, error)
}

// Options configures the Mercado Pago client.
type Options struct {
	BaseURL        string
	Source         CredentialSource
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Mercado Pago checkout and payments APIs.
type Client struct {
	baseURL    string
	source     CredentialSource
	httpClient *http.Client
	logger     *infra.Logger
}

// Item is one purchasable line in a checkout preference.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

// Payer identifies the paying customer.
type Payer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BackURLs are the redirect targets after checkout.
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest is the payload for creating a checkout preference.
type PreferenceRequest struct {
	Items               []Item   `json:"items"`
	Payer               Payer    `json:"payer"`
	ExternalReference   string   `json:"external_reference"`
	BackURLs            BackURLs `json:"back_urls"`
	AutoReturn          string   `json:"auto_return,omitempty"`
	NotificationURL     string   `json:"notification_url,omitempty"`
	StatementDescriptor string   `json:"statement_descriptor,omitempty"`
}

// Preference is the created checkout session.
type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// Payment is the authoritative payment record fetched from the gateway.
type Payment struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	ExternalReference string      `json:"external_reference"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	if opts.Source == nil {
		return nil, errors.New("mercadopago: credential source is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.mercadopago.com"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		source:     opts.Source,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CreatePreference creates a checkout preference and returns its redirect URLs.
func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	creds, err := c.source.GatewayCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: load credentials: %w", err)
	}
	if creds.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if req.NotificationURL == "" {
		req.NotificationURL = creds.NotificationURL
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: encode preference: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+creds.AccessToken)

	var pref Preference
	if err := c.do(httpReq, &pref); err != nil {
		return nil, err
	}
	c.logger.Info().Str("preference_id", pref.ID).Msg("checkout preference created")
	return &pref, nil
}

// GetPayment fetches the authoritative payment details for the given id.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	creds, err := c.source.GatewayCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: load credentials: %w", err)
	}
	if creds.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	endpoint := c.baseURL + "/v1/payments/" + url.PathEscape(paymentID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+creds.AccessToken)

	var payment Payment
	if err := c.do(httpReq, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mercadopago: http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("mercadopago: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		_ = json.Unmarshal(data, &apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.logger.Error().Int("status", resp.StatusCode).Str("path", req.URL.Path).Msg("gateway call failed")
		return fmt.Errorf("mercadopago: %s (status %d)", msg, resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("mercadopago: decode response: %w", err)
	}
	return nil
}

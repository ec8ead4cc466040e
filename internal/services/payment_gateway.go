package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ChargeIntent is the processor's charge-authorization handle. ClientSecret
// is handed to the browser to complete the card charge; ID is stored with the
// payment record.
type ChargeIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentGateway is the client for the external card-charge processor
// (Stripe wire format). Calls are synchronous with no retry and no
// idempotency key: a client that retries can mint duplicate intents.
type PaymentGateway struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewPaymentGateway(baseURL, secretKey string) *PaymentGateway {
	return &PaymentGateway{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
	}
}

// CreateIntent authorizes a charge for the amount in minor currency units and
// returns the client-usable secret.
func (g *PaymentGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*ChargeIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment processor unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read processor response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment processor returned %d: %s", resp.StatusCode, string(body))
	}

	var intent ChargeIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to decode processor response: %w", err)
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("processor response missing client_secret")
	}
	return &intent, nil
}

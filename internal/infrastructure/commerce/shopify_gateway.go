package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrMissingShopifyStoreURL    = errors.New("missing SHOPIFY_STORE_URL")
	ErrMissingShopifyAccessToken = errors.New("missing SHOPIFY_ACCESS_TOKEN")
)

// ShopifyGateway talks to the commerce platform's store-credit API. Both calls
// are bounded by the HTTP client timeout; a timeout is reported as an error,
// never as a successful post.
//
// Mock mode (CREDIT_GATEWAY_MOCK=1) short-circuits the remote calls for local
// runs and CI, mirroring the rest of the env-driven configuration.
type ShopifyGateway struct {
	baseURL     string
	accessToken string
	currency    string
	client      *http.Client
	mockMode    bool
}

var _ interfaces.ICreditLedgerGateway = (*ShopifyGateway)(nil)

func NewShopifyGateway(storeURL, accessToken string) (*ShopifyGateway, error) {
	currency := strings.TrimSpace(os.Getenv("CREDIT_CURRENCY"))
	if currency == "" {
		currency = "INR"
	}

	if isCreditGatewayMockEnabled() {
		log.Info().Msg("credit ledger gateway mock mode enabled")
		return &ShopifyGateway{mockMode: true, currency: currency}, nil
	}

	storeURL = strings.TrimRight(strings.TrimSpace(storeURL), "/")
	if storeURL == "" {
		return nil, ErrMissingShopifyStoreURL
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingShopifyAccessToken
	}

	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("CREDIT_GATEWAY_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	log.Info().Str("store_url", storeURL).Dur("timeout", timeout).Msg("credit ledger gateway initialized")
	return &ShopifyGateway{
		baseURL:     storeURL,
		accessToken: accessToken,
		currency:    currency,
		client:      &http.Client{Timeout: timeout},
	}, nil
}

type balancePayload struct {
	StoreCredit struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"store_credit"`
}

func (g *ShopifyGateway) GetBalance(ctx context.Context, customerRef string) (entities.CreditBalance, error) {
	if g.mockMode {
		return entities.CreditBalance{Amount: 0, Currency: g.currency}, nil
	}

	url := fmt.Sprintf("%s/admin/api/2024-01/customers/%s/store_credit.json", g.baseURL, customerRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.CreditBalance{}, err
	}
	req.Header.Set("X-Shopify-Access-Token", g.accessToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return entities.CreditBalance{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.CreditBalance{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.CreditBalance{}, fmt.Errorf("balance read rejected: status=%d body=%s", resp.StatusCode, truncate(body))
	}

	var payload balancePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return entities.CreditBalance{}, err
	}
	currency := payload.StoreCredit.Currency
	if currency == "" {
		currency = g.currency
	}
	return entities.CreditBalance{Amount: payload.StoreCredit.Amount, Currency: currency}, nil
}

type creditPostPayload struct {
	Credit struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"credit"`
}

type creditPostResponse struct {
	Transaction struct {
		ID json.Number `json:"id"`
	} `json:"transaction"`
}

func (g *ShopifyGateway) PostCredit(ctx context.Context, customerRef string, amount int64) (entities.CreditPostResult, error) {
	if g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Info().Str("customer_ref", customerRef).Int64("amount", amount).Str("transaction_id", id).Msg("mock credit post")
		return entities.CreditPostResult{Success: true, ExternalTransactionID: id}, nil
	}

	var payload creditPostPayload
	payload.Credit.Amount = amount
	payload.Credit.Currency = g.currency
	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.CreditPostResult{}, err
	}

	url := fmt.Sprintf("%s/admin/api/2024-01/customers/%s/store_credit/credit.json", g.baseURL, customerRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return entities.CreditPostResult{}, err
	}
	req.Header.Set("X-Shopify-Access-Token", g.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return entities.CreditPostResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.CreditPostResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The ledger answered and said no: a typed rejection, not an error.
		return entities.CreditPostResult{
			Success:       false,
			FailureReason: fmt.Sprintf("credit post rejected: status=%d body=%s", resp.StatusCode, truncate(body)),
		}, nil
	}

	var parsed creditPostResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Warn().Err(err).Str("customer_ref", customerRef).Msg("credit post response unmarshal failed")
	}
	return entities.CreditPostResult{Success: true, ExternalTransactionID: parsed.Transaction.ID.String()}, nil
}

func isCreditGatewayMockEnabled() bool {
	for _, key := range []string{"CREDIT_GATEWAY_MOCK", "SHOPIFY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func truncate(b []byte) string {
	const max = 512
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}

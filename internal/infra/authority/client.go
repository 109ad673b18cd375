package authority

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/gateway"
	"github.com/shopspring/decimal"
)

// Client implements gateway.AccountAuthority against the bank-accounts
// service's REST API. Retry and timeout policy live here in the transport
// configuration, never in the usecases.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the authority reachable at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// accountPayload is the authority's account snapshot on the wire.
type accountPayload struct {
	ID         string             `json:"id"`
	Number     string             `json:"account_number"`
	Balance    decimal.Decimal    `json:"balance"`
	Type       domain.AccountType `json:"account_type"`
	CustomerID string             `json:"customer_id"`
}

func (p accountPayload) toDomain() *domain.Account {
	return &domain.Account{
		ID:         p.ID,
		Number:     p.Number,
		Balance:    p.Balance,
		Type:       p.Type,
		CustomerID: p.CustomerID,
	}
}

// FetchAccount reads an account snapshot by id. No side effect.
func (c *Client) FetchAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s", c.baseURL, url.PathEscape(accountID))
	return c.call(ctx, http.MethodGet, "fetch", accountID, endpoint)
}

// Credit applies a deposit-style increase and returns the updated snapshot.
func (c *Client) Credit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/deposit?amount=%s",
		c.baseURL, url.PathEscape(accountID), url.QueryEscape(amount.String()))
	return c.call(ctx, http.MethodPut, "credit", accountID, endpoint)
}

// Debit applies a withdrawal-style decrease and returns the updated snapshot.
// The authority enforces its own withdrawal policy; a rejection comes back as
// domain.ErrInsufficientFunds.
func (c *Client) Debit(ctx context.Context, accountID string, amount decimal.Decimal) (*domain.Account, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/withdraw?amount=%s",
		c.baseURL, url.PathEscape(accountID), url.QueryEscape(amount.String()))
	return c.call(ctx, http.MethodPut, "debit", accountID, endpoint)
}

func (c *Client) call(ctx context.Context, method, operation, accountID, endpoint string) (*domain.Account, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build authority request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.AuthorityError{Operation: operation, AccountID: accountID, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var payload accountPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, &domain.AuthorityError{Operation: operation, AccountID: accountID, Err: err}
		}
		return payload.toDomain(), nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrAccountNotFound

	case resp.StatusCode == http.StatusUnprocessableEntity && operation == "debit":
		return nil, domain.ErrInsufficientFunds

	default:
		// Keep the authority's diagnostic string for operators.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.AuthorityError{
			Operation: operation,
			AccountID: accountID,
			Status:    resp.StatusCode,
			Detail:    string(body),
		}
	}
}

var _ gateway.AccountAuthority = (*Client)(nil)

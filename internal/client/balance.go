package client

import (
	"context"
	"fmt"

	"github.com/siampay/siampay-go/internal/constants"
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// BalanceClient implements the siampay.BalanceClient interface. The
// balance is a singleton resource without an identifier.
type BalanceClient struct {
	httpClient *internalhttp.Client
}

// NewBalanceClient creates a new BalanceClient.
func NewBalanceClient(httpClient *internalhttp.Client) *BalanceClient {
	return &BalanceClient{
		httpClient: httpClient,
	}
}

// Retrieve retrieves the current balance.
func (c *BalanceClient) Retrieve(ctx context.Context) (*siampay.Balance, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathBalance)
	if err != nil {
		return nil, fmt.Errorf("retrieving balance: %w", err)
	}

	return materializeResource[*siampay.Balance](resp)
}

// Reload refreshes the balance from the server.
func (c *BalanceClient) Reload(ctx context.Context, balance *siampay.Balance) error {
	err := reloadResource(ctx, c.httpClient, constants.PathBalance, balance)
	if err != nil {
		return fmt.Errorf("reloading balance: %w", err)
	}

	return nil
}

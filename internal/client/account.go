package client

import (
	"context"
	"fmt"

	"github.com/siampay/siampay-go/internal/constants"
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// AccountClient implements the siampay.AccountClient interface. The
// account is a singleton resource tied to the secret key in use.
type AccountClient struct {
	httpClient *internalhttp.Client
}

// NewAccountClient creates a new AccountClient.
func NewAccountClient(httpClient *internalhttp.Client) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
	}
}

// Retrieve retrieves the account details.
func (c *AccountClient) Retrieve(ctx context.Context) (*siampay.Account, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathAccount)
	if err != nil {
		return nil, fmt.Errorf("retrieving account: %w", err)
	}

	return materializeResource[*siampay.Account](resp)
}

// Reload refreshes the account from the server.
func (c *AccountClient) Reload(ctx context.Context, account *siampay.Account) error {
	err := reloadResource(ctx, c.httpClient, constants.PathAccount, account)
	if err != nil {
		return fmt.Errorf("reloading account: %w", err)
	}

	return nil
}

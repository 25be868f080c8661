package client

import (
	"context"
	"fmt"

	"github.com/siampay/siampay-go/internal/constants"
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// TransactionsClient implements the siampay.TransactionsClient interface.
type TransactionsClient struct {
	httpClient *internalhttp.Client
}

// NewTransactionsClient creates a new TransactionsClient.
func NewTransactionsClient(httpClient *internalhttp.Client) *TransactionsClient {
	return &TransactionsClient{
		httpClient: httpClient,
	}
}

// Retrieve retrieves a specific transaction.
func (c *TransactionsClient) Retrieve(ctx context.Context, transactionID string) (*siampay.Transaction, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathTransactions+"/"+transactionID)
	if err != nil {
		return nil, fmt.Errorf("retrieving transaction: %w", err)
	}

	return materializeResource[*siampay.Transaction](resp)
}

// List lists all transactions.
func (c *TransactionsClient) List(ctx context.Context) (*siampay.Collection, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathTransactions)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return materializeResource[*siampay.Collection](resp)
}

// Reload refreshes the transaction from the server.
func (c *TransactionsClient) Reload(ctx context.Context, transaction *siampay.Transaction) error {
	id, err := instanceID(transaction)
	if err != nil {
		return err
	}

	err = reloadResource(ctx, c.httpClient, constants.PathTransactions+"/"+id, transaction)
	if err != nil {
		return fmt.Errorf("reloading transaction: %w", err)
	}

	return nil
}

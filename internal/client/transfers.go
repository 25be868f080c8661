package client

import (
	"context"
	"fmt"

	"github.com/siampay/siampay-go/internal/constants"
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// TransfersClient implements the siampay.TransfersClient interface.
type TransfersClient struct {
	httpClient *internalhttp.Client
}

// NewTransfersClient creates a new TransfersClient.
func NewTransfersClient(httpClient *internalhttp.Client) *TransfersClient {
	return &TransfersClient{
		httpClient: httpClient,
	}
}

// Create creates a transfer to the bank account in the account settings.
func (c *TransfersClient) Create(ctx context.Context, fields map[string]any) (*siampay.Transfer, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathTransfers, encodeFields(fields))
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	return materializeResource[*siampay.Transfer](resp)
}

// Retrieve retrieves a specific transfer.
func (c *TransfersClient) Retrieve(ctx context.Context, transferID string) (*siampay.Transfer, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathTransfers+"/"+transferID)
	if err != nil {
		return nil, fmt.Errorf("retrieving transfer: %w", err)
	}

	return materializeResource[*siampay.Transfer](resp)
}

// List lists all transfers.
func (c *TransfersClient) List(ctx context.Context) (*siampay.Collection, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathTransfers)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}

	return materializeResource[*siampay.Collection](resp)
}

// Update sends the transfer's dirty fields merged with fields as a
// partial update. The server rejects updates to non-pending transfers.
func (c *TransfersClient) Update(ctx context.Context, transfer *siampay.Transfer, fields map[string]any) (*siampay.Transfer, error) {
	id, err := instanceID(transfer)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, constants.PathTransfers+"/"+id, mergeChanges(transfer, fields))
	if err != nil {
		return nil, fmt.Errorf("updating transfer: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return nil, err
	}

	transfer.Load(data)

	return transfer, nil
}

// Destroy cancels a still-pending transfer and replaces its local state
// with the response.
func (c *TransfersClient) Destroy(ctx context.Context, transfer *siampay.Transfer) error {
	id, err := instanceID(transfer)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, constants.PathTransfers+"/"+id)
	if err != nil {
		return fmt.Errorf("destroying transfer: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return err
	}

	transfer.Load(data)

	return nil
}

// Reload refreshes the transfer from the server.
func (c *TransfersClient) Reload(ctx context.Context, transfer *siampay.Transfer) error {
	id, err := instanceID(transfer)
	if err != nil {
		return err
	}

	err = reloadResource(ctx, c.httpClient, constants.PathTransfers+"/"+id, transfer)
	if err != nil {
		return fmt.Errorf("reloading transfer: %w", err)
	}

	return nil
}

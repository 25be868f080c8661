package client

import (
	"context"
	"fmt"

	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// RefundsClient implements the siampay.RefundsClient interface. Refunds
// are created through ChargesClient.Refund; this client only refreshes
// them, via their server-supplied location.
type RefundsClient struct {
	httpClient *internalhttp.Client
}

// NewRefundsClient creates a new RefundsClient.
func NewRefundsClient(httpClient *internalhttp.Client) *RefundsClient {
	return &RefundsClient{
		httpClient: httpClient,
	}
}

// Reload refreshes the refund from the server.
func (c *RefundsClient) Reload(ctx context.Context, refund *siampay.Refund) error {
	location, err := instanceLocation(refund)
	if err != nil {
		return err
	}

	err = reloadResource(ctx, c.httpClient, location, refund)
	if err != nil {
		return fmt.Errorf("reloading refund: %w", err)
	}

	return nil
}

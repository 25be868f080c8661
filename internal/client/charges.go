package client

import (
	"context"
	"fmt"

	"github.com/siampay/siampay-go/internal/constants"
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// ChargesClient implements the siampay.ChargesClient interface.
type ChargesClient struct {
	httpClient *internalhttp.Client
}

// NewChargesClient creates a new ChargesClient.
func NewChargesClient(httpClient *internalhttp.Client) *ChargesClient {
	return &ChargesClient{
		httpClient: httpClient,
	}
}

// Create creates a new charge.
func (c *ChargesClient) Create(ctx context.Context, fields map[string]any) (*siampay.Charge, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathCharges, encodeFields(fields))
	if err != nil {
		return nil, fmt.Errorf("creating charge: %w", err)
	}

	return materializeResource[*siampay.Charge](resp)
}

// Retrieve retrieves a specific charge.
func (c *ChargesClient) Retrieve(ctx context.Context, chargeID string) (*siampay.Charge, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathCharges+"/"+chargeID)
	if err != nil {
		return nil, fmt.Errorf("retrieving charge: %w", err)
	}

	return materializeResource[*siampay.Charge](resp)
}

// List lists all charges.
func (c *ChargesClient) List(ctx context.Context) (*siampay.Collection, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathCharges)
	if err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}

	return materializeResource[*siampay.Collection](resp)
}

// Update sends the charge's dirty fields merged with fields as a partial
// update and replaces the charge's state with the response.
func (c *ChargesClient) Update(ctx context.Context, charge *siampay.Charge, fields map[string]any) (*siampay.Charge, error) {
	id, err := instanceID(charge)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, constants.PathCharges+"/"+id, mergeChanges(charge, fields))
	if err != nil {
		return nil, fmt.Errorf("updating charge: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return nil, err
	}

	charge.Load(data)

	return charge, nil
}

// Reload refreshes the charge from the server.
func (c *ChargesClient) Reload(ctx context.Context, charge *siampay.Charge) error {
	id, err := instanceID(charge)
	if err != nil {
		return err
	}

	err = reloadResource(ctx, c.httpClient, constants.PathCharges+"/"+id, charge)
	if err != nil {
		return fmt.Errorf("reloading charge: %w", err)
	}

	return nil
}

// Capture captures an authorized charge and replaces the charge's state
// with the response.
func (c *ChargesClient) Capture(ctx context.Context, charge *siampay.Charge) error {
	id, err := instanceID(charge)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathCharges+"/"+id+"/capture", nil)
	if err != nil {
		return fmt.Errorf("capturing charge: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return err
	}

	charge.Load(data)

	return nil
}

// Refund refunds a refundable charge and returns the new refund. The
// charge is reloaded afterwards: refunding changes charge-level fields,
// the remaining refundable amount among them, that the refund response
// does not carry.
func (c *ChargesClient) Refund(ctx context.Context, charge *siampay.Charge, fields map[string]any) (*siampay.Refund, error) {
	id, err := instanceID(charge)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.PathCharges+"/"+id+"/refunds", encodeFields(fields))
	if err != nil {
		return nil, fmt.Errorf("refunding charge: %w", err)
	}

	refund, err := materializeResource[*siampay.Refund](resp)
	if err != nil {
		return nil, err
	}

	err = c.Reload(ctx, charge)
	if err != nil {
		return nil, err
	}

	return refund, nil
}

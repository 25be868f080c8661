package client

import (
	"context"
	"fmt"

	"github.com/siampay/siampay-go/internal/constants"
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// CustomersClient implements the siampay.CustomersClient interface.
type CustomersClient struct {
	httpClient *internalhttp.Client
}

// NewCustomersClient creates a new CustomersClient.
func NewCustomersClient(httpClient *internalhttp.Client) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
	}
}

// Create creates a new customer.
func (c *CustomersClient) Create(ctx context.Context, fields map[string]any) (*siampay.Customer, error) {
	resp, err := c.httpClient.Post(ctx, constants.PathCustomers, encodeFields(fields))
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return materializeResource[*siampay.Customer](resp)
}

// Retrieve retrieves a specific customer.
func (c *CustomersClient) Retrieve(ctx context.Context, customerID string) (*siampay.Customer, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathCustomers+"/"+customerID)
	if err != nil {
		return nil, fmt.Errorf("retrieving customer: %w", err)
	}

	return materializeResource[*siampay.Customer](resp)
}

// List lists all customers.
func (c *CustomersClient) List(ctx context.Context) (*siampay.Collection, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathCustomers)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	return materializeResource[*siampay.Collection](resp)
}

// Update sends the customer's dirty fields merged with fields as a
// partial update and replaces the customer's state with the response.
func (c *CustomersClient) Update(ctx context.Context, customer *siampay.Customer, fields map[string]any) (*siampay.Customer, error) {
	id, err := instanceID(customer)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, constants.PathCustomers+"/"+id, mergeChanges(customer, fields))
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return nil, err
	}

	customer.Load(data)

	return customer, nil
}

// Destroy deletes the customer and replaces its local state with the
// response. Inspect Destroyed on the record afterwards.
func (c *CustomersClient) Destroy(ctx context.Context, customer *siampay.Customer) error {
	id, err := instanceID(customer)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, constants.PathCustomers+"/"+id)
	if err != nil {
		return fmt.Errorf("destroying customer: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return err
	}

	customer.Load(data)

	return nil
}

// Reload refreshes the customer from the server.
func (c *CustomersClient) Reload(ctx context.Context, customer *siampay.Customer) error {
	id, err := instanceID(customer)
	if err != nil {
		return err
	}

	err = reloadResource(ctx, c.httpClient, constants.PathCustomers+"/"+id, customer)
	if err != nil {
		return fmt.Errorf("reloading customer: %w", err)
	}

	return nil
}

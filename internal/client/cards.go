package client

import (
	"context"
	"fmt"

	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// CardsClient implements the siampay.CardsClient interface. Cards are
// sub-resources of customers; every operation resolves its path from the
// card's server-supplied location field.
type CardsClient struct {
	httpClient *internalhttp.Client
}

// NewCardsClient creates a new CardsClient.
func NewCardsClient(httpClient *internalhttp.Client) *CardsClient {
	return &CardsClient{
		httpClient: httpClient,
	}
}

// Update sends the card's dirty fields merged with fields as a partial
// update and replaces the card's state with the response.
func (c *CardsClient) Update(ctx context.Context, card *siampay.Card, fields map[string]any) (*siampay.Card, error) {
	location, err := instanceLocation(card)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, location, mergeChanges(card, fields))
	if err != nil {
		return nil, fmt.Errorf("updating card: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return nil, err
	}

	card.Load(data)

	return card, nil
}

// Destroy deletes the card, unassociating it from its customer, and
// replaces its local state with the response.
func (c *CardsClient) Destroy(ctx context.Context, card *siampay.Card) error {
	location, err := instanceLocation(card)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, location)
	if err != nil {
		return fmt.Errorf("destroying card: %w", err)
	}

	data, err := decodeObject(resp)
	if err != nil {
		return err
	}

	card.Load(data)

	return nil
}

// Reload refreshes the card from the server.
func (c *CardsClient) Reload(ctx context.Context, card *siampay.Card) error {
	location, err := instanceLocation(card)
	if err != nil {
		return err
	}

	err = reloadResource(ctx, c.httpClient, location, card)
	if err != nil {
		return fmt.Errorf("reloading card: %w", err)
	}

	return nil
}

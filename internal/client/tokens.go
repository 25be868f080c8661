package client

import (
	"context"
	"fmt"

	"github.com/siampay/siampay-go/internal/constants"
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// TokensClient implements the siampay.TokensClient interface. It talks to
// the vault endpoint and therefore requires the public key.
type TokensClient struct {
	httpClient *internalhttp.Client
}

// NewTokensClient creates a new TokensClient.
func NewTokensClient(httpClient *internalhttp.Client) *TokensClient {
	return &TokensClient{
		httpClient: httpClient,
	}
}

// Create creates a card token. Card fields are nested under the card[...]
// bracket-key convention the vault API expects.
func (c *TokensClient) Create(ctx context.Context, card map[string]any) (*siampay.Token, error) {
	nested := make(map[string]any, len(card))
	for key, value := range card {
		nested[fmt.Sprintf("card[%s]", key)] = value
	}

	resp, err := c.httpClient.Post(ctx, constants.PathTokens, encodeFields(nested))
	if err != nil {
		return nil, fmt.Errorf("creating token: %w", err)
	}

	return materializeResource[*siampay.Token](resp)
}

// Retrieve retrieves a specific token.
func (c *TokensClient) Retrieve(ctx context.Context, tokenID string) (*siampay.Token, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathTokens+"/"+tokenID)
	if err != nil {
		return nil, fmt.Errorf("retrieving token: %w", err)
	}

	return materializeResource[*siampay.Token](resp)
}

// Reload refreshes the token from the server.
func (c *TokensClient) Reload(ctx context.Context, token *siampay.Token) error {
	id, err := instanceID(token)
	if err != nil {
		return err
	}

	err = reloadResource(ctx, c.httpClient, constants.PathTokens+"/"+id, token)
	if err != nil {
		return fmt.Errorf("reloading token: %w", err)
	}

	return nil
}

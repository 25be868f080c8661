package client

import (
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// NewTestClient creates a client whose main and vault endpoints both point
// at the given base URL, with test keys set.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		mainHTTP: internalhttp.NewClient(baseURL, "skey_test_4xs8breq3htbkj03d2x"),
		vaultHTTP: internalhttp.NewClient(baseURL, "pkey_test_4xs8breq32civvobx15",
			internalhttp.WithMissingKeyError(siampay.ErrPublicKeyRequired)),
	}

	client.initializeResourceClients()

	return client
}

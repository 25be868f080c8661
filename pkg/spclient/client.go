// Package spclient provides the main entry point for creating SiamPay API
// clients.
package spclient

import (
	"strings"

	"github.com/siampay/siampay-go/internal/client"
	"github.com/siampay/siampay-go/internal/constants"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// New creates a new SiamPay API client.
//
// Endpoints default to the production hosts when unset; keys may be left
// empty when the corresponding operations are unused. The config is read
// once here and not consulted again, so a client is safe for concurrent
// use as long as records themselves are not shared across goroutines.
func New(config *siampay.Config) (siampay.Client, error) {
	if config == nil {
		return nil, siampay.ErrConfigRequired
	}

	cfg := *config
	cfg.APIEndpoint = normalizeEndpoint(cfg.APIEndpoint, constants.DefaultAPIEndpoint)
	cfg.VaultEndpoint = normalizeEndpoint(cfg.VaultEndpoint, constants.DefaultVaultEndpoint)

	apiClient, err := client.New(&cfg)
	if err != nil {
		return nil, err
	}

	return apiClient, nil
}

// NewWithKeys creates a new client with just the two API keys.
func NewWithKeys(secretKey, publicKey string) (siampay.Client, error) {
	return New(&siampay.Config{
		SecretKey: secretKey,
		PublicKey: publicKey,
	})
}

func normalizeEndpoint(endpoint, fallback string) string {
	if endpoint == "" {
		return fallback
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

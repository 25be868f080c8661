package constants

import "time"

// Client identification.
const (
	// ClientVersion is the version of this library, advertised in the
	// User-Agent header of every request.
	ClientVersion = "1.2.0"

	// APICompatVersion is the SiamPay API compatibility date this client
	// was written against.
	APICompatVersion = "2017-11-02"
)

// API endpoints.
const (
	// DefaultAPIEndpoint is the main API host, authorized by the secret key.
	DefaultAPIEndpoint = "https://api.siampay.co"

	// DefaultVaultEndpoint is the tokenization host, authorized by the
	// public key.
	DefaultVaultEndpoint = "https://vault.siampay.co"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Resource collection paths.
const (
	PathAccount      = "account"
	PathBalance      = "balance"
	PathCharges      = "charges"
	PathCustomers    = "customers"
	PathTokens       = "tokens"
	PathTransfers    = "transfers"
	PathTransactions = "transactions"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

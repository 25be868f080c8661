// Package client implements the siampay resource client interfaces over
// the internal HTTP transport.
package client

import (
	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// Client implements the siampay.Client interface. It holds one transport
// per endpoint: the main API authorized by the secret key and the vault
// API authorized by the public key.
type Client struct {
	mainHTTP  *internalhttp.Client
	vaultHTTP *internalhttp.Client

	// Resource clients
	account      siampay.AccountClient
	balance      siampay.BalanceClient
	tokens       siampay.TokensClient
	cards        siampay.CardsClient
	charges      siampay.ChargesClient
	customers    siampay.CustomersClient
	refunds      siampay.RefundsClient
	transfers    siampay.TransfersClient
	transactions siampay.TransactionsClient
}

// New creates a new SiamPay API client from the given configuration. The
// endpoints must already be normalized; spclient.New takes care of that.
func New(config *siampay.Config) (*Client, error) {
	if config == nil {
		return nil, siampay.ErrConfigRequired
	}

	mainHTTP := internalhttp.NewClient(config.APIEndpoint, config.SecretKey,
		append(httpOptions(config), internalhttp.WithMissingKeyError(siampay.ErrSecretKeyRequired))...)
	vaultHTTP := internalhttp.NewClient(config.VaultEndpoint, config.PublicKey,
		append(httpOptions(config), internalhttp.WithMissingKeyError(siampay.ErrPublicKeyRequired))...)

	client := &Client{
		mainHTTP:  mainHTTP,
		vaultHTTP: vaultHTTP,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *siampay.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.account = NewAccountClient(c.mainHTTP)
	c.balance = NewBalanceClient(c.mainHTTP)
	c.tokens = NewTokensClient(c.vaultHTTP)
	c.cards = NewCardsClient(c.mainHTTP)
	c.charges = NewChargesClient(c.mainHTTP)
	c.customers = NewCustomersClient(c.mainHTTP)
	c.refunds = NewRefundsClient(c.mainHTTP)
	c.transfers = NewTransfersClient(c.mainHTTP)
	c.transactions = NewTransactionsClient(c.mainHTTP)
}

// Account implements siampay.Client.Account.
func (c *Client) Account() siampay.AccountClient {
	return c.account
}

// Balance implements siampay.Client.Balance.
func (c *Client) Balance() siampay.BalanceClient {
	return c.balance
}

// Tokens implements siampay.Client.Tokens.
func (c *Client) Tokens() siampay.TokensClient {
	return c.tokens
}

// Cards implements siampay.Client.Cards.
func (c *Client) Cards() siampay.CardsClient {
	return c.cards
}

// Charges implements siampay.Client.Charges.
func (c *Client) Charges() siampay.ChargesClient {
	return c.charges
}

// Customers implements siampay.Client.Customers.
func (c *Client) Customers() siampay.CustomersClient {
	return c.customers
}

// Refunds implements siampay.Client.Refunds.
func (c *Client) Refunds() siampay.RefundsClient {
	return c.refunds
}

// Transfers implements siampay.Client.Transfers.
func (c *Client) Transfers() siampay.TransfersClient {
	return c.transfers
}

// Transactions implements siampay.Client.Transactions.
func (c *Client) Transactions() siampay.TransactionsClient {
	return c.transactions
}

// loggerAdapter adapts siampay.Logger to the transport's Logger.
type loggerAdapter struct {
	logger siampay.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

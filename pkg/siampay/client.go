package siampay

import "context"

// Client provides access to every resource client. Construct one with
// spclient.New.
type Client interface {
	Account() AccountClient
	Balance() BalanceClient
	Tokens() TokensClient
	Cards() CardsClient
	Charges() ChargesClient
	Customers() CustomersClient
	Refunds() RefundsClient
	Transfers() TransfersClient
	Transactions() TransactionsClient
}

// AccountClient retrieves the account tied to the secret key.
type AccountClient interface {
	Retrieve(ctx context.Context) (*Account, error)
	Reload(ctx context.Context, account *Account) error
}

// BalanceClient retrieves the account balance.
type BalanceClient interface {
	Retrieve(ctx context.Context) (*Balance, error)
	Reload(ctx context.Context, balance *Balance) error
}

// TokensClient creates and retrieves card tokens against the vault API.
// These operations require the public key.
type TokensClient interface {
	// Create creates a token from raw card fields. In production the token
	// should be created client-side so card details never reach your
	// server; this call is intended for test mode.
	Create(ctx context.Context, card map[string]any) (*Token, error)
	Retrieve(ctx context.Context, tokenID string) (*Token, error)
	Reload(ctx context.Context, token *Token) error
}

// CardsClient operates on cards nested under a customer. The instance path
// is taken from the card's server-supplied location field.
type CardsClient interface {
	// Update sends the card's dirty fields merged with fields as a partial
	// update. Explicit fields win on conflict.
	Update(ctx context.Context, card *Card, fields map[string]any) (*Card, error)
	Destroy(ctx context.Context, card *Card) error
	Reload(ctx context.Context, card *Card) error
}

// ChargesClient creates and manipulates charges.
type ChargesClient interface {
	Create(ctx context.Context, fields map[string]any) (*Charge, error)
	Retrieve(ctx context.Context, chargeID string) (*Charge, error)
	List(ctx context.Context) (*Collection, error)
	// Update sends the charge's dirty fields merged with fields as a
	// partial update. Explicit fields win on conflict; the merge order is
	// inherited behavior, not a hardened contract.
	Update(ctx context.Context, charge *Charge, fields map[string]any) (*Charge, error)
	Reload(ctx context.Context, charge *Charge) error
	// Capture captures a charge created as authorize-only.
	Capture(ctx context.Context, charge *Charge) error
	// Refund refunds a refundable charge, wholly or partially, and returns
	// the new refund. The charge itself is reloaded afterwards, since
	// refunding changes charge-level fields the refund response does not
	// carry.
	Refund(ctx context.Context, charge *Charge, fields map[string]any) (*Refund, error)
}

// CustomersClient creates and manipulates customers.
type CustomersClient interface {
	Create(ctx context.Context, fields map[string]any) (*Customer, error)
	Retrieve(ctx context.Context, customerID string) (*Customer, error)
	List(ctx context.Context) (*Collection, error)
	Update(ctx context.Context, customer *Customer, fields map[string]any) (*Customer, error)
	Destroy(ctx context.Context, customer *Customer) error
	Reload(ctx context.Context, customer *Customer) error
}

// RefundsClient operates on refunds returned by ChargesClient.Refund. The
// instance path is taken from the refund's location field.
type RefundsClient interface {
	Reload(ctx context.Context, refund *Refund) error
}

// TransfersClient creates and manipulates transfers. Update and Destroy
// apply only while the transfer is still pending; the server rejects them
// otherwise.
type TransfersClient interface {
	Create(ctx context.Context, fields map[string]any) (*Transfer, error)
	Retrieve(ctx context.Context, transferID string) (*Transfer, error)
	List(ctx context.Context) (*Collection, error)
	Update(ctx context.Context, transfer *Transfer, fields map[string]any) (*Transfer, error)
	Destroy(ctx context.Context, transfer *Transfer) error
	Reload(ctx context.Context, transfer *Transfer) error
}

// TransactionsClient retrieves ledger transactions.
type TransactionsClient interface {
	Retrieve(ctx context.Context, transactionID string) (*Transaction, error)
	List(ctx context.Context) (*Collection, error)
	Reload(ctx context.Context, transaction *Transaction) error
}

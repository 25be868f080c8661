package siampay

// Account represents the account associated with the secret key in use.
type Account struct {
	Record
}

// Balance represents the current balance of the account. A balance has no
// identifier and is immutable.
type Balance struct {
	Record
}

// Token represents a single-use card token created against the vault API.
type Token struct {
	Record
}

// Card represents a stored card. Cards are not created directly; they come
// back nested in customers and tokens, and their canonical instance path
// is the server-supplied location field.
type Card struct {
	Record
}

// Charge represents a charge against a card or token. A charge is created
// authorized or captured depending on input flags, may be captured later
// when authorize-only, and may be refunded while refundable. The client
// does not enforce these transitions; the server's response is
// authoritative.
type Charge struct {
	Record
}

// Customer represents a customer, which can hold card details for reuse.
type Customer struct {
	Record
}

// Refund represents a refund of a charge. Refunds are created through
// ChargesClient.Refund.
type Refund struct {
	Record
}

// Transfer represents a transfer to the account's bank account.
type Transfer struct {
	Record
}

// Transaction represents a ledger transaction for bookkeeping.
type Transaction struct {
	Record
}

// Package siampay provides types, interfaces, and helpers for working with
// the SiamPay payment-processing API.
//
// # Overview
//
// The siampay package defines the generic Record representation of decoded
// API objects, the concrete resource kinds (Account, Balance, Token, Card,
// Charge, Customer, Refund, Transfer, Transaction, Collection), the error
// taxonomy, and the interfaces for resource-oriented clients (ChargesClient,
// CustomersClient, and so on). A concrete implementation of these clients is
// provided by the spclient package, which wires configuration, transport,
// and authentication. Most consumers should import spclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/siampay/siampay-go/pkg/siampay"
//	  "github.com/siampay/siampay-go/pkg/spclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := spclient.New(&siampay.Config{
//	    SecretKey: "skey_test_4xs8breq3htbkj03d2x",
//	    PublicKey: "pkey_test_4xs8breq32civvobx15",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  charge, err := cli.Charges().Create(ctx, map[string]any{
//	    "amount":   100000,
//	    "currency": "thb",
//	    "card":     "tokn_test_4xs9408a642a1htto8z",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = charge
//	}
//
// # Records
//
// Every decoded API object is backed by a Record: a field mapping that
// tracks which fields have been written locally since the last load. Read
// fields with Get, write them with Set, and pass the record back to a
// binding's Update to send only the changed fields as a partial update.
// Nested object-valued fields are converted to their concrete kinds on each
// read through the object factory.
//
// # Errors
//
// API errors are represented by APIError, which carries the gateway's error
// code, message, and HTTP status. Helpers such as IsNotFound,
// IsAuthenticationFailure, and IsInvalidCard make it easy to branch on
// common cases. Configuration problems (a missing key, for example) surface
// as static sentinel errors before any network I/O.
package siampay

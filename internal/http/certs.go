package http

import (
	"crypto/x509"
	_ "embed"
)

// The library ships its own certificate bundle and validates against it
// instead of the platform store.
//
//go:embed data/ca_certificates.pem
var caCertificates []byte

func trustedRoots() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(caCertificates)

	return pool
}

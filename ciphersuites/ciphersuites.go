// Package ciphersuites builds the catalog of cipher suites that the
// underlying OpenSSL engine supports for each SSL/TLS version. The engine
// reports suites under OpenSSL's own naming convention; the catalog
// reconciles those names with the corresponding RFC names and classifies
// each suite's key strength and anonymity.
package ciphersuites

import (
	"fmt"
	"strings"
)

// ProtocolVersion identifies one of the six supported SSL/TLS revisions.
type ProtocolVersion int

const (
	VersionSSL20 ProtocolVersion = iota
	VersionSSL30
	VersionTLS10
	VersionTLS11
	VersionTLS12
	VersionTLS13
)

// AllVersions lists every supported protocol version, oldest first.
var AllVersions = []ProtocolVersion{
	VersionSSL20,
	VersionSSL30,
	VersionTLS10,
	VersionTLS11,
	VersionTLS12,
	VersionTLS13,
}

var versionNames = map[ProtocolVersion]string{
	VersionSSL20: "SSLv2",
	VersionSSL30: "SSLv3",
	VersionTLS10: "TLSv1.0",
	VersionTLS11: "TLSv1.1",
	VersionTLS12: "TLSv1.2",
	VersionTLS13: "TLSv1.3",
}

// String gives the name of the ProtocolVersion as a string.
func (v ProtocolVersion) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return "Invalid"
}

// ParseVersion returns the ProtocolVersion named by s, accepting the same
// spellings String produces.
func ParseVersion(s string) (ProtocolVersion, error) {
	for vers, name := range versionNames {
		if strings.EqualFold(s, name) {
			return vers, nil
		}
	}
	return 0, fmt.Errorf("unknown protocol version %q", s)
}

// A CipherSuite describes one cipher suite the engine supports for a given
// protocol version. It is a plain value; catalog entries are never mutated
// after construction.
type CipherSuite struct {
	// Name is the RFC name of the suite, e.g. TLS_RSA_WITH_AES_128_CBC_SHA.
	Name string `json:"name"`
	// OpenSSLName is the engine's own name for the suite, e.g. AES128-SHA.
	// It is what gets handed back to the engine when requesting this suite.
	OpenSSLName string `json:"openssl_name"`
	// IsAnonymous reports whether the suite uses an unauthenticated
	// Diffie-Hellman style key exchange.
	IsAnonymous bool `json:"is_anonymous"`
	// KeySize is the symmetric key strength in bits; 0 for NULL ciphers.
	KeySize int `json:"key_size"`
}

// anonMarker is the substring that flags an anonymous key exchange in a
// suite's RFC name.
const anonMarker = "anon"

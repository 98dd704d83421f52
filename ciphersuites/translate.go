package ciphersuites

import (
	"fmt"
	"strings"

	cferr "github.com/jammasterj89/sslyze/errors"
)

// Translate converts an OpenSSL cipher name, for a given protocol version,
// into a fully classified CipherSuite. A name with no table entry means the
// engine supports a cipher suite the static tables don't know about yet;
// that is a data-maintenance defect, reported as a MappingError and never
// papered over with a default.
func Translate(vers ProtocolVersion, opensslName string) (CipherSuite, error) {
	names, ok := openSSLToRFCNames[vers]
	if !ok {
		return CipherSuite{}, cferr.Wrap(cferr.MappingError, cferr.UnknownProtocolVersion,
			fmt.Errorf("no name table for protocol version %s", vers))
	}
	rfcName, ok := names[opensslName]
	if !ok {
		return CipherSuite{}, cferr.Wrap(cferr.MappingError, cferr.UnknownCipherSuite,
			fmt.Errorf("OpenSSL cipher %q has no RFC name for %s", opensslName, vers))
	}
	keySize, ok := rfcNameToKeySize[rfcName]
	if !ok {
		return CipherSuite{}, cferr.Wrap(cferr.MappingError, cferr.UnknownCipherSuite,
			fmt.Errorf("cipher suite %q has no key size entry", rfcName))
	}
	return CipherSuite{
		Name:        rfcName,
		OpenSSLName: opensslName,
		IsAnonymous: strings.Contains(rfcName, anonMarker),
		KeySize:     keySize,
	}, nil
}

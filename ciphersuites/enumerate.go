package ciphersuites

import (
	cferr "github.com/jammasterj89/sslyze/errors"
	"github.com/jammasterj89/sslyze/log"
)

// AllCiphersList is the cipher selection handed to the engine when
// enumerating. SRP and PSK cipher suites are disabled as they need a
// special setup in the client and are never used.
const AllCiphersList = "ALL:COMPLEMENTOFALL:-PSK:-SRP"

// Engine is the boundary to the underlying OpenSSL implementation. It
// configures a throwaway handle for the given protocol version, applies the
// cipher selection, and reads back the resulting list of OpenSSL cipher
// names. Implementations perform no network activity. Two variants exist: a
// legacy build covering SSLv2 and long-retired ciphers, and a modern build
// covering current TLS 1.2 ciphers.
type Engine interface {
	CipherList(vers ProtocolVersion, selection string) ([]string, error)
}

// enumerate queries one engine variant for the OpenSSL cipher names it
// supports at the given version, deduplicated.
func enumerate(engine Engine, vers ProtocolVersion) (map[string]bool, error) {
	names, err := engine.CipherList(vers, AllCiphersList)
	if err != nil {
		if _, ok := err.(*cferr.Error); ok {
			return nil, err
		}
		return nil, cferr.Wrap(cferr.EngineError, cferr.InitFailed, err)
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	log.Debugf("enumerated %d cipher suites for %s", len(set), vers)
	return set, nil
}

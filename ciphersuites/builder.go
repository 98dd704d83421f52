package ciphersuites

import (
	"fmt"
	"sort"

	cferr "github.com/jammasterj89/sslyze/errors"
	"github.com/jammasterj89/sslyze/log"
)

// Catalog maps every supported protocol version to the cipher suites the
// engine can offer for it, sorted by RFC name. A built catalog is complete:
// either all six versions are populated or Build failed as a whole.
type Catalog map[ProtocolVersion][]CipherSuite

// The versions enumerated through the legacy engine variant alone.
var legacyOnlyVersions = []ProtocolVersion{
	VersionSSL20,
	VersionSSL30,
	VersionTLS10,
	VersionTLS11,
}

// Build enumerates and translates the cipher suites for every supported
// protocol version. The enumeration is deterministic for a fixed engine
// build, so repeated calls produce structurally identical catalogs.
func Build(legacy, modern Engine) (Catalog, error) {
	catalog := make(Catalog, len(AllVersions))

	for _, vers := range legacyOnlyVersions {
		names, err := enumerate(legacy, vers)
		if err != nil {
			return nil, err
		}
		suites, err := translateAll(vers, names)
		if err != nil {
			return nil, err
		}
		catalog[vers] = suites
	}

	// For TLS 1.2 both engine variants have to be queried: each build
	// knows cipher suites the other does not.
	names, err := enumerate(legacy, VersionTLS12)
	if err != nil {
		return nil, err
	}
	modernNames, err := enumerate(modern, VersionTLS12)
	if err != nil {
		return nil, err
	}
	for name := range modernNames {
		names[name] = true
	}
	// The generic "ALL" selection can surface TLS 1.3 suites even on a
	// handle configured for TLS 1.2; keep them out of the 1.2 set.
	for _, name := range tls13CipherSuites {
		delete(names, name)
	}
	suites, err := translateAll(VersionTLS12, names)
	if err != nil {
		return nil, err
	}
	catalog[VersionTLS12] = suites

	// TLS 1.3 suites are not discoverable through the generic enumeration
	// mechanism, so the list is hardcoded. OpenSSL reports them under their
	// RFC names, and TLS 1.3 has no anonymous suites.
	t13 := make([]CipherSuite, 0, len(tls13CipherSuites))
	for _, name := range tls13CipherSuites {
		keySize, ok := rfcNameToKeySize[name]
		if !ok {
			return nil, cferr.Wrap(cferr.MappingError, cferr.UnknownCipherSuite,
				fmt.Errorf("cipher suite %q has no key size entry", name))
		}
		t13 = append(t13, CipherSuite{
			Name:        name,
			OpenSSLName: name,
			IsAnonymous: false,
			KeySize:     keySize,
		})
	}
	sort.Slice(t13, func(i, j int) bool { return t13[i].Name < t13[j].Name })
	catalog[VersionTLS13] = t13

	log.Debug("cipher suite catalog built for all protocol versions")
	return catalog, nil
}

// translateAll translates a set of OpenSSL cipher names for one protocol
// version. Different OpenSSL builds spell a few suites differently (e.g.
// EDH-DSS-DES-CBC3-SHA vs DHE-DSS-DES-CBC3-SHA), so two native names can
// share an RFC name; one representative is kept, chosen deterministically
// by native-name order.
func translateAll(vers ProtocolVersion, names map[string]bool) ([]CipherSuite, error) {
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	seen := make(map[string]bool, len(sorted))
	suites := make([]CipherSuite, 0, len(sorted))
	for _, name := range sorted {
		suite, err := Translate(vers, name)
		if err != nil {
			return nil, err
		}
		if seen[suite.Name] {
			continue
		}
		seen[suite.Name] = true
		suites = append(suites, suite)
	}
	sort.Slice(suites, func(i, j int) bool { return suites[i].Name < suites[j].Name })
	return suites, nil
}

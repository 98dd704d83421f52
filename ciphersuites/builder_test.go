package ciphersuites

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	cferr "github.com/jammasterj89/sslyze/errors"
)

// fakeEngine plays back canned `openssl ciphers` listings, standing in for
// one OpenSSL build.
type fakeEngine struct {
	lists      map[ProtocolVersion][]string
	calls      int
	selections []string
	err        error
}

func (e *fakeEngine) CipherList(vers ProtocolVersion, selection string) ([]string, error) {
	e.calls++
	e.selections = append(e.selections, selection)
	if e.err != nil {
		return nil, e.err
	}
	list, ok := e.lists[vers]
	if !ok {
		return nil, cferr.New(cferr.EngineError, cferr.UnsupportedProtocol)
	}
	return list, nil
}

// Listings representative of a legacy OpenSSL 1.0.2 build. The EDH-*
// spellings are how that build names the DHE 3DES suites.
var legacyTLSList = []string{
	"AES128-SHA", "AES256-SHA", "DES-CBC3-SHA", "RC4-SHA", "RC4-MD5",
	"ADH-AES128-SHA", "EXP-DES-CBC-SHA", "NULL-MD5", "NULL-SHA",
	"EDH-RSA-DES-CBC3-SHA", "EDH-DSS-DES-CBC3-SHA",
}

func newLegacyEngine() *fakeEngine {
	return &fakeEngine{lists: map[ProtocolVersion][]string{
		VersionSSL20: {
			"RC4-MD5", "EXP-RC4-MD5", "RC2-CBC-MD5", "EXP-RC2-CBC-MD5",
			"IDEA-CBC-MD5", "DES-CBC-MD5", "DES-CBC3-MD5", "RC4-64-MD5",
		},
		VersionSSL30: legacyTLSList,
		VersionTLS10: legacyTLSList,
		VersionTLS11: legacyTLSList,
		VersionTLS12: append([]string{
			"AES128-SHA256", "AES256-SHA256", "AES128-GCM-SHA256",
			"AES256-GCM-SHA384", "ECDHE-RSA-AES128-GCM-SHA256",
			"DHE-RSA-AES256-GCM-SHA384",
		}, legacyTLSList...),
	}}
}

// A modern 1.1.1 build: knows ChaCha20 and the DHE-* 3DES spellings the
// legacy build reports as EDH-*, and leaks the TLS 1.3 suites into a
// nominally TLS 1.2 listing, exactly like the real `openssl ciphers` does
// with the generic ALL selection.
func newModernEngine() *fakeEngine {
	return &fakeEngine{lists: map[ProtocolVersion][]string{
		VersionTLS12: {
			"TLS_AES_256_GCM_SHA384", "TLS_CHACHA20_POLY1305_SHA256",
			"TLS_AES_128_GCM_SHA256",
			"ECDHE-RSA-AES128-GCM-SHA256", "ECDHE-RSA-CHACHA20-POLY1305",
			"DHE-RSA-CHACHA20-POLY1305", "AES128-GCM-SHA256",
			"AES256-GCM-SHA384", "DHE-RSA-DES-CBC3-SHA",
			"DHE-DSS-DES-CBC3-SHA", "AECDH-AES128-SHA",
		},
	}}
}

func buildTestCatalog(t *testing.T) Catalog {
	t.Helper()
	catalog, err := Build(newLegacyEngine(), newModernEngine())
	require.NoError(t, err)
	return catalog
}

func TestBuildCoversAllVersions(t *testing.T) {
	catalog := buildTestCatalog(t)
	for _, vers := range AllVersions {
		if len(catalog[vers]) == 0 {
			t.Errorf("no cipher suites for %s", vers)
		}
	}
}

func TestBuildTLS13IsFixed(t *testing.T) {
	catalog := buildTestCatalog(t)
	want := []CipherSuite{
		{Name: "TLS_AES_128_CCM_8_SHA256", OpenSSLName: "TLS_AES_128_CCM_8_SHA256", KeySize: 128},
		{Name: "TLS_AES_128_CCM_SHA256", OpenSSLName: "TLS_AES_128_CCM_SHA256", KeySize: 128},
		{Name: "TLS_AES_128_GCM_SHA256", OpenSSLName: "TLS_AES_128_GCM_SHA256", KeySize: 128},
		{Name: "TLS_AES_256_GCM_SHA384", OpenSSLName: "TLS_AES_256_GCM_SHA384", KeySize: 256},
		{Name: "TLS_CHACHA20_POLY1305_SHA256", OpenSSLName: "TLS_CHACHA20_POLY1305_SHA256", KeySize: 256},
	}
	if diff := cmp.Diff(want, catalog[VersionTLS13]); diff != "" {
		t.Errorf("TLS 1.3 suite set mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTLS12ExcludesTLS13Suites(t *testing.T) {
	catalog := buildTestCatalog(t)
	tls13 := make(map[string]bool)
	for _, name := range tls13CipherSuites {
		tls13[name] = true
	}
	for _, suite := range catalog[VersionTLS12] {
		if tls13[suite.Name] || tls13[suite.OpenSSLName] {
			t.Errorf("TLS 1.3 suite %s leaked into the TLS 1.2 set", suite.Name)
		}
	}
}

func TestBuildMergesBothTLS12Variants(t *testing.T) {
	catalog := buildTestCatalog(t)
	byName := make(map[string]CipherSuite)
	for _, suite := range catalog[VersionTLS12] {
		byName[suite.Name] = suite
	}
	// Only the legacy build knows the export suite, only the modern build
	// knows ChaCha20; the union must hold both.
	if _, ok := byName["TLS_RSA_EXPORT_WITH_DES40_CBC_SHA"]; !ok {
		t.Error("legacy-only suite missing from the TLS 1.2 set")
	}
	if _, ok := byName["TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256"]; !ok {
		t.Error("modern-only suite missing from the TLS 1.2 set")
	}
	// EDH-RSA-DES-CBC3-SHA (legacy) and DHE-RSA-DES-CBC3-SHA (modern) name
	// the same suite; exactly one representative survives.
	suite, ok := byName["TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA"]
	if !ok {
		t.Fatal("DHE 3DES suite missing from the TLS 1.2 set")
	}
	if suite.OpenSSLName != "DHE-RSA-DES-CBC3-SHA" {
		t.Errorf("unexpected representative %s for colliding spellings", suite.OpenSSLName)
	}
}

func TestBuildNoDuplicateRFCNames(t *testing.T) {
	catalog := buildTestCatalog(t)
	for vers, suites := range catalog {
		seen := make(map[string]bool)
		for _, suite := range suites {
			if seen[suite.Name] {
				t.Errorf("%s: %s appears twice", vers, suite.Name)
			}
			seen[suite.Name] = true
		}
	}
}

func TestBuildAnonymousFlag(t *testing.T) {
	catalog := buildTestCatalog(t)
	anonSeen := false
	for vers, suites := range catalog {
		for _, suite := range suites {
			if suite.IsAnonymous != strings.Contains(suite.Name, anonMarker) {
				t.Errorf("%s: %s: IsAnonymous = %v", vers, suite.Name, suite.IsAnonymous)
			}
			anonSeen = anonSeen || suite.IsAnonymous
		}
	}
	if !anonSeen {
		t.Error("test listings should produce at least one anonymous suite")
	}
	for _, suite := range catalog[VersionTLS13] {
		if suite.IsAnonymous {
			t.Errorf("TLS 1.3 has no anonymous suites, got %s", suite.Name)
		}
	}
}

func TestBuildKeySizeDomain(t *testing.T) {
	catalog := buildTestCatalog(t)
	for vers, suites := range catalog {
		for _, suite := range suites {
			if !validKeySizes[suite.KeySize] {
				t.Errorf("%s: %s: key size %d outside the valid set", vers, suite.Name, suite.KeySize)
			}
		}
	}
}

// An SSLv2 enumeration can never produce an anonymous suite, a NULL cipher
// or a 256-bit cipher.
func TestBuildSSLv2Profile(t *testing.T) {
	catalog := buildTestCatalog(t)
	sslv2Sizes := map[int]bool{40: true, 56: true, 64: true, 128: true, 168: true}
	for _, suite := range catalog[VersionSSL20] {
		if suite.IsAnonymous {
			t.Errorf("anonymous suite %s in the SSLv2 set", suite.Name)
		}
		if !sslv2Sizes[suite.KeySize] {
			t.Errorf("%s: key size %d impossible for SSLv2", suite.Name, suite.KeySize)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	first, err := Build(newLegacyEngine(), newModernEngine())
	require.NoError(t, err)
	second, err := Build(newLegacyEngine(), newModernEngine())
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two builds differ (-first +second):\n%s", diff)
	}
}

func TestBuildUsesFixedSelection(t *testing.T) {
	legacy, modern := newLegacyEngine(), newModernEngine()
	_, err := Build(legacy, modern)
	require.NoError(t, err)

	// One query per legacy-only version plus one for TLS 1.2; the modern
	// variant is only ever asked about TLS 1.2.
	require.Equal(t, 5, legacy.calls)
	require.Equal(t, 1, modern.calls)
	for _, selection := range append(legacy.selections, modern.selections...) {
		require.Equal(t, AllCiphersList, selection)
	}
}

func TestBuildFailsOnUnknownCipher(t *testing.T) {
	legacy := newLegacyEngine()
	legacy.lists[VersionSSL30] = append([]string{"NOT-A-CIPHER"}, legacyTLSList...)
	catalog, err := Build(legacy, newModernEngine())
	require.Error(t, err)
	require.Nil(t, catalog)

	cerr, ok := err.(*cferr.Error)
	require.True(t, ok, "expected a coded error, got %T", err)
	require.Equal(t, int(cferr.MappingError)+int(cferr.UnknownCipherSuite), cerr.ErrorCode)
}

func TestBuildFailsWhenEngineUnavailable(t *testing.T) {
	// A legacy build compiled without SSLv2 support cannot serve the
	// enumeration at all; the whole build aborts rather than yielding a
	// partial catalog.
	legacy := newLegacyEngine()
	delete(legacy.lists, VersionSSL20)
	catalog, err := Build(legacy, newModernEngine())
	require.Error(t, err)
	require.Nil(t, catalog)

	cerr, ok := err.(*cferr.Error)
	require.True(t, ok, "expected a coded error, got %T", err)
	require.Equal(t, int(cferr.EngineError)+int(cferr.UnsupportedProtocol), cerr.ErrorCode)
}

func TestBuildWrapsPlainEngineErrors(t *testing.T) {
	modern := newModernEngine()
	modern.err = errors.New("exec failed")
	_, err := Build(newLegacyEngine(), modern)
	require.Error(t, err)

	cerr, ok := err.(*cferr.Error)
	require.True(t, ok, "expected a coded error, got %T", err)
	require.Equal(t, int(cferr.EngineError)+int(cferr.InitFailed), cerr.ErrorCode)
}

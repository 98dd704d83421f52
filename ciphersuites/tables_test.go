package ciphersuites

import (
	"strings"
	"testing"
)

// Every key strength in the catalog comes from a small closed set; anything
// else is a transcription error in the table.
var validKeySizes = map[int]bool{
	0:   true,
	40:  true,
	56:  true,
	64:  true,
	128: true,
	168: true,
	256: true,
}

func TestKeySizeDomain(t *testing.T) {
	for name, size := range rfcNameToKeySize {
		if !validKeySizes[size] {
			t.Errorf("%s: key size %d outside the valid set", name, size)
		}
	}
}

// The SSLv2 table is small enough that full closure is required: every
// canonical name it can produce must have a key size.
func TestSSLv2TableClosure(t *testing.T) {
	for opensslName, rfcName := range sslv2OpenSSLToRFCNames {
		if _, ok := rfcNameToKeySize[rfcName]; !ok {
			t.Errorf("%s -> %s: no key size entry", opensslName, rfcName)
		}
	}
}

func TestSSLv2TableHasNoAnonymousSuites(t *testing.T) {
	for _, rfcName := range sslv2OpenSSLToRFCNames {
		if strings.Contains(rfcName, anonMarker) {
			t.Errorf("SSLv2 table contains anonymous suite %s", rfcName)
		}
	}
}

func TestNameTableVersions(t *testing.T) {
	for _, vers := range AllVersions {
		_, ok := openSSLToRFCNames[vers]
		if vers == VersionTLS13 {
			if ok {
				t.Error("TLS 1.3 must not have a name table; its suite list is hardcoded")
			}
			continue
		}
		if !ok {
			t.Errorf("no name table for %s", vers)
		}
	}
	if len(openSSLToRFCNames) != len(AllVersions)-1 {
		t.Errorf("name table registered for an unsupported version")
	}
}

// SSLv3 through TLS 1.2 must share one table: the same OpenSSL name denotes
// the same suite for all of them.
func TestSharedTLSTable(t *testing.T) {
	for _, vers := range []ProtocolVersion{VersionSSL30, VersionTLS10, VersionTLS11, VersionTLS12} {
		if len(openSSLToRFCNames[vers]) != len(tlsOpenSSLToRFCNames) {
			t.Errorf("%s does not use the shared TLS name table", vers)
		}
	}
}

func TestTLS13TableClosure(t *testing.T) {
	if len(tls13CipherSuites) != 5 {
		t.Fatalf("expected 5 TLS 1.3 suites, got %d", len(tls13CipherSuites))
	}
	wantSizes := map[string]int{
		"TLS_AES_128_GCM_SHA256":       128,
		"TLS_AES_128_CCM_SHA256":       128,
		"TLS_AES_256_GCM_SHA384":       256,
		"TLS_AES_128_CCM_8_SHA256":     128,
		"TLS_CHACHA20_POLY1305_SHA256": 256,
	}
	for _, name := range tls13CipherSuites {
		want, ok := wantSizes[name]
		if !ok {
			t.Errorf("unexpected TLS 1.3 suite %s", name)
			continue
		}
		if got := rfcNameToKeySize[name]; got != want {
			t.Errorf("%s: key size %d, want %d", name, got, want)
		}
	}
}

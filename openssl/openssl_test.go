package openssl

import (
	"reflect"
	"testing"

	"github.com/jammasterj89/sslyze/ciphersuites"
	cferr "github.com/jammasterj89/sslyze/errors"
)

func TestParseCipherList(t *testing.T) {
	var parseTests = []struct {
		in   string
		want []string
	}{
		{"AES128-SHA:AES256-SHA:DES-CBC3-SHA\n", []string{"AES128-SHA", "AES256-SHA", "DES-CBC3-SHA"}},
		{"AES128-SHA", []string{"AES128-SHA"}},
		{"AES128-SHA::AES256-SHA", []string{"AES128-SHA", "AES256-SHA"}},
		{"\n", nil},
		{"", nil},
	}
	for _, test := range parseTests {
		got := ParseCipherList(test.in)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ParseCipherList(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestVersionFlags(t *testing.T) {
	for _, vers := range ciphersuites.AllVersions {
		_, ok := versionFlags[vers]
		if vers == ciphersuites.VersionTLS13 {
			if ok {
				t.Error("TLS 1.3 must not be enumerable through `openssl ciphers`")
			}
			continue
		}
		if !ok {
			t.Errorf("no `openssl ciphers` flag for %s", vers)
		}
	}
}

func TestCipherListUnsupportedVersion(t *testing.T) {
	client := New("")
	_, err := client.CipherList(ciphersuites.VersionTLS13, ciphersuites.AllCiphersList)
	if err == nil {
		t.Fatal("expected an EngineError for TLS 1.3")
	}
	cerr, ok := err.(*cferr.Error)
	if !ok {
		t.Fatalf("expected a coded error, got %T: %v", err, err)
	}
	if want := int(cferr.EngineError) + int(cferr.UnsupportedProtocol); cerr.ErrorCode != want {
		t.Fatalf("error code = %d, want %d", cerr.ErrorCode, want)
	}
}

func TestCipherListMissingBinary(t *testing.T) {
	client := New("/nonexistent/openssl")
	_, err := client.CipherList(ciphersuites.VersionTLS12, ciphersuites.AllCiphersList)
	if err == nil {
		t.Fatal("expected an EngineError for a missing binary")
	}
	cerr, ok := err.(*cferr.Error)
	if !ok {
		t.Fatalf("expected a coded error, got %T: %v", err, err)
	}
	if want := int(cferr.EngineError) + int(cferr.InitFailed); cerr.ErrorCode != want {
		t.Fatalf("error code = %d, want %d", cerr.ErrorCode, want)
	}
}

func TestNewDefaultsBinary(t *testing.T) {
	if client := New(""); client.Binary != DefaultBinary {
		t.Errorf("New(\"\") uses %q", client.Binary)
	}
	if client := New("/opt/openssl-1.0.2/bin/openssl"); client.Binary != "/opt/openssl-1.0.2/bin/openssl" {
		t.Errorf("New overrode the configured binary with %q", client.Binary)
	}
}

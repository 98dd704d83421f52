package ciphersuites

import "testing"

func TestVersionString(t *testing.T) {
	var stringTests = []struct {
		vers ProtocolVersion
		want string
	}{
		{VersionSSL20, "SSLv2"},
		{VersionSSL30, "SSLv3"},
		{VersionTLS10, "TLSv1.0"},
		{VersionTLS11, "TLSv1.1"},
		{VersionTLS12, "TLSv1.2"},
		{VersionTLS13, "TLSv1.3"},
		{ProtocolVersion(42), "Invalid"},
	}
	for _, test := range stringTests {
		if got := test.vers.String(); got != test.want {
			t.Errorf("String(%d) = %s, want %s", test.vers, got, test.want)
		}
	}
}

func TestParseVersion(t *testing.T) {
	for _, vers := range AllVersions {
		got, err := ParseVersion(vers.String())
		if err != nil {
			t.Fatalf("ParseVersion(%s): %v", vers, err)
		}
		if got != vers {
			t.Errorf("ParseVersion(%s) = %s", vers, got)
		}
	}

	// Case-insensitive, to be forgiving on the command line.
	if got, err := ParseVersion("tlsv1.2"); err != nil || got != VersionTLS12 {
		t.Errorf("ParseVersion(tlsv1.2) = %s, %v", got, err)
	}

	if _, err := ParseVersion("TLSv9.9"); err == nil {
		t.Error("ParseVersion accepted an unknown version")
	}
}

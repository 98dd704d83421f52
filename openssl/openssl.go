// Package openssl drives an OpenSSL binary to enumerate the cipher suites
// it supports per SSL/TLS version. Two installs are usually involved: a
// legacy build that still knows SSLv2 and long-retired ciphers, and a
// modern build covering current TLS 1.2 ciphers. A Client points at one of
// them; it spawns a throwaway `openssl ciphers` invocation per query and
// performs no network activity.
package openssl

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jammasterj89/sslyze/ciphersuites"
	cferr "github.com/jammasterj89/sslyze/errors"
	"github.com/jammasterj89/sslyze/log"
)

// DefaultBinary is the modern OpenSSL executable used when none is
// configured.
const DefaultBinary = "openssl"

// Client enumerates cipher suites through one OpenSSL install.
type Client struct {
	// Binary is the path of the openssl executable to run.
	Binary string
}

// New returns a Client for the given openssl executable, falling back to
// DefaultBinary for the empty string.
func New(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{Binary: binary}
}

// versionFlags maps a protocol version to the `openssl ciphers` flag that
// restricts the listing to that version. TLS 1.3 is absent: its suite list
// is not discoverable through this mechanism and the catalog hardcodes it.
var versionFlags = map[ciphersuites.ProtocolVersion]string{
	ciphersuites.VersionSSL20: "-ssl2",
	ciphersuites.VersionSSL30: "-ssl3",
	ciphersuites.VersionTLS10: "-tls1",
	ciphersuites.VersionTLS11: "-tls1_1",
	ciphersuites.VersionTLS12: "-tls1_2",
}

// CipherList implements ciphersuites.Engine. It runs
// `openssl ciphers <version flag> <selection>` and returns the cipher names
// from the colon-separated listing. A binary that cannot be run, or that
// rejects the protocol version (e.g. an SSLv2 query against a build
// compiled without SSLv2), surfaces as an EngineError.
func (c *Client) CipherList(vers ciphersuites.ProtocolVersion, selection string) ([]string, error) {
	flag, ok := versionFlags[vers]
	if !ok {
		return nil, cferr.Wrap(cferr.EngineError, cferr.UnsupportedProtocol,
			fmt.Errorf("%s cannot be enumerated through `openssl ciphers`", vers))
	}

	cmd := exec.Command(c.Binary, "ciphers", flag, selection)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("running %s ciphers %s", c.Binary, flag)
	if err := cmd.Run(); err != nil {
		return nil, cferr.Wrap(cferr.EngineError, cferr.InitFailed,
			fmt.Errorf("%s ciphers %s: %v: %s", c.Binary, flag, err,
				bytes.TrimSpace(stderr.Bytes())))
	}
	return ParseCipherList(stdout.String()), nil
}

// ParseCipherList splits the colon-separated output of `openssl ciphers`
// into individual cipher names, dropping empty fields and surrounding
// whitespace.
func ParseCipherList(out string) []string {
	var names []string
	for _, field := range strings.Split(strings.TrimSpace(out), ":") {
		if field = strings.TrimSpace(field); field != "" {
			names = append(names, field)
		}
	}
	return names
}

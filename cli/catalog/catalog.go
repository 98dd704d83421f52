// Package catalog implements the catalog command.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jammasterj89/sslyze/ciphersuites"
	"github.com/jammasterj89/sslyze/cli"
	"github.com/jammasterj89/sslyze/log"
	"github.com/jammasterj89/sslyze/openssl"
)

var catalogUsageText = `sslyze catalog -- list the cipher suites the local OpenSSL installs support per SSL/TLS version

Usage of catalog:
        sslyze catalog [-json] [-openssl path] [-legacy-openssl path] [VERSION...]

Arguments:
        VERSION: Optional protocol version(s) to list, e.g. SSLv3 TLSv1.2. Defaults to all versions.
Flags:
`

var catalogFlags = []string{"json", "openssl", "legacy-openssl", "loglevel"}

func parseVersions(args []string) ([]ciphersuites.ProtocolVersion, error) {
	if len(args) == 0 {
		return ciphersuites.AllVersions, nil
	}
	var versions []ciphersuites.ProtocolVersion
	for len(args) > 0 {
		var name string
		var err error
		name, args, err = cli.PopFirstArgument(args)
		if err != nil {
			return nil, err
		}
		vers, err := ciphersuites.ParseVersion(name)
		if err != nil {
			return nil, err
		}
		versions = append(versions, vers)
	}
	return versions, nil
}

func printText(vers ciphersuites.ProtocolVersion, suites []ciphersuites.CipherSuite) {
	fmt.Printf("[%s] %d cipher suites\n", vers, len(suites))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 4, ' ', 0)
	for _, suite := range suites {
		anon := ""
		if suite.IsAnonymous {
			anon = "anonymous"
		}
		fmt.Fprintf(w, "\t%s\t%s\t%d bits\t%s\n", suite.Name, suite.OpenSSLName, suite.KeySize, anon)
	}
	w.Flush()
}

func catalogMain(args []string, c cli.Config) error {
	versions, err := parseVersions(args)
	if err != nil {
		return err
	}

	repo := ciphersuites.NewRepository(
		openssl.New(c.LegacyOpenSSLBinary),
		openssl.New(c.OpenSSLBinary),
	)

	if c.JSON {
		out := make(map[string][]ciphersuites.CipherSuite, len(versions))
		for _, vers := range versions {
			suites, err := repo.GetAllCipherSuites(vers)
			if err != nil {
				return err
			}
			out[vers.String()] = suites
		}
		jsonOut, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", jsonOut)
		return nil
	}

	for _, vers := range versions {
		log.Infof("building cipher suite catalog for %s", vers)
		suites, err := repo.GetAllCipherSuites(vers)
		if err != nil {
			return err
		}
		printText(vers, suites)
	}
	return nil
}

// Command assembles the definition of Command 'catalog'
var Command = &cli.Command{UsageText: catalogUsageText, Flags: catalogFlags, Main: catalogMain}

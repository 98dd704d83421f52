// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/jammasterj89/sslyze/cli"
)

var (
	version = "dev"
)

// Usage text for 'sslyze version'
var versionUsageText = `sslyze version -- print out the version of sslyze

Usage of version:
	sslyze version
`

// FormatVersion returns the formatted version string.
func FormatVersion() string {
	return fmt.Sprintf("Version: %s\nRuntime: %s\n", version, runtime.Version())
}

// The main functionality of 'sslyze version' is to print out the version info.
func versionMain(args []string, c cli.Config) (err error) {
	fmt.Printf("%s", FormatVersion())
	return nil
}

// Command assembles the definition of Command 'version'
var Command = &cli.Command{UsageText: versionUsageText, Flags: nil, Main: versionMain}

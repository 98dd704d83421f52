package version

import (
	"strings"
	"testing"

	"github.com/jammasterj89/sslyze/cli"
)

func TestVersionMain(t *testing.T) {
	args := []string{"sslyze", "version"}
	err := versionMain(args, cli.Config{})
	if err != nil {
		t.Fatal("version main failed")
	}
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion()
	if !strings.Contains(out, "Version: dev") {
		t.Fatal("unexpected version string:", out)
	}
}

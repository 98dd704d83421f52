package cli

/*
sslyze is the command line tool to inspect the cipher suite support of the
local OpenSSL installs.

Usage:
	sslyze command [-flags] arguments

The commands are defined in the cli subpackages and include

	catalog	 list the cipher suites supported for each SSL/TLS version
	version	 prints the current sslyze version

Use "sslyze [command] -help" to find out more about a command.
*/

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jammasterj89/sslyze/log"
)

// Command holds the implementation details of a sslyze command.
type Command struct {
	// The Usage Text
	UsageText string
	// Flags to look up in the global table
	Flags []string
	// Main runs the command, args are the arguments after flags
	Main func(args []string, c Config) error
}

// Config is a type to hold flag values used by sslyze commands.
type Config struct {
	OpenSSLBinary       string
	LegacyOpenSSLBinary string
	JSON                bool
	LogLevel            int
}

// Parsed command name
var cmdName string

// registerFlags defines all sslyze command flags and associates their values
// with variables.
func registerFlags(c *Config, f *flag.FlagSet) {
	f.StringVar(&c.OpenSSLBinary, "openssl", "openssl", "modern OpenSSL executable to enumerate with")
	f.StringVar(&c.LegacyOpenSSLBinary, "legacy-openssl", "openssl-legacy", "legacy OpenSSL executable to enumerate with")
	f.BoolVar(&c.JSON, "json", false, "print the output as JSON")
	f.IntVar(&c.LogLevel, "loglevel", log.LevelInfo, "Log level (0 = DEBUG, 5 = FATAL)")
}

// usage is the sslyze usage heading. It will be appended with names of
// defined commands in cmds to form the final usage message of sslyze.
const usage = `Usage:
Available commands:
`

// printDefaultValue is a helper function to print out a user friendly
// usage message of a flag. It's useful since we want to write customized
// usage message on selected subsets of the global flag set. It is
// borrowed from standard library source code. Since flag value type is
// not exported, default string flag values are printed without
// quotes. The only exception is the empty string, which is printed as "".
func printDefaultValue(f *flag.Flag) {
	format := "  -%s=%s: %s\n"
	if f.DefValue == "" {
		format = "  -%s=%q: %s\n"
	}
	fmt.Fprintf(os.Stderr, format, f.Name, f.DefValue, f.Usage)
}

// PopFirstArgument returns the first element and the rest of a string
// slice and return error if failed to do so. It is a helper function
// to parse non-flag arguments.
func PopFirstArgument(args []string) (string, []string, error) {
	if len(args) < 1 {
		return "", nil, errors.New("not enough arguments are supplied --- please refer to the usage")
	}
	return args[0], args[1:], nil
}

// Start is the entrance point of sslyze command line tools.
func Start(cmds map[string]*Command) {
	// sslyzeFlagSet is the flag sets for sslyze.
	var sslyzeFlagSet = flag.NewFlagSet("sslyze", flag.ExitOnError)
	var c Config

	registerFlags(&c, sslyzeFlagSet)
	// Initial parse of command line arguments. By convention, only -h/-help is supported.
	flag.Parse()
	if flag.Usage == nil {
		flag.Usage = func() {
			fmt.Fprintf(os.Stderr, usage)
			for name := range cmds {
				fmt.Fprintf(os.Stderr, "%s\n", name)
			}
		}
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "No command is given.\n")
		flag.Usage()
		return
	}

	// Clip out the command name and args for the command
	cmdName = flag.Arg(0)
	args := flag.Args()[1:]
	cmd, found := cmds[cmdName]
	if !found {
		fmt.Fprintf(os.Stderr, "Command %s is not defined.\n", cmdName)
		flag.Usage()
		return
	}
	// The usage of each individual command is re-written to mention
	// flags defined and referenced only in that command.
	sslyzeFlagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s", cmd.UsageText)
		for _, name := range cmd.Flags {
			if f := sslyzeFlagSet.Lookup(name); f != nil {
				printDefaultValue(f)
			}
		}
	}

	// Parse all flags and take the rest as argument lists for the command
	sslyzeFlagSet.Parse(args)
	args = sslyzeFlagSet.Args()

	log.Level = c.LogLevel

	if err := cmd.Main(args, c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

/*
sslyze is a command line tool to inspect the SSL/TLS capabilities of the
local OpenSSL installs, reporting each supported cipher suite under its RFC
name together with its key strength.

Usage:
	sslyze command [-flags] arguments

The commands are

	catalog	list the cipher suites supported for each SSL/TLS version
	version	prints the current sslyze version

Use "sslyze [command] -help" to find out more about a command.
*/
package main

import (
	"github.com/jammasterj89/sslyze/cli"
	"github.com/jammasterj89/sslyze/cli/catalog"
	"github.com/jammasterj89/sslyze/cli/version"
)

// cmds is a registry of defined commands.
var cmds = map[string]*cli.Command{
	"catalog": catalog.Command,
	"version": version.Command,
}

func main() {
	cli.Start(cmds)
}

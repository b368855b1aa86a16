package main

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/chogm/chogmcmd"

	"github.com/jessevdk/go-flags"
)

func main() {
	cmd := &chogmcmd.ChogmCommand{}

	parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash)
	parser.NamespaceDelimiter = "-"

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}

		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "for help use --help")
		os.Exit(2)
	}

	if err := cmd.Execute(nil); err != nil {
		var exitErr *chogmcmd.ExitCodeError
		if errors.As(err, &exitErr) {
			chogmcmd.PrintExitError(os.Stderr, exitErr)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

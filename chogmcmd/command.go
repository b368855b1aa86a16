// Package chogmcmd wires the chogm command line to the changer and walker.
// All switches live on the command value; nothing here is process-global.
package chogmcmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"code.cloudfoundry.org/chogm/changer"
	"code.cloudfoundry.org/chogm/logging"
	"code.cloudfoundry.org/chogm/ogm"
	"code.cloudfoundry.org/chogm/walker"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/commandrunner/linux_command_runner"
	"github.com/pkg/errors"
)

// ExitCodeError carries the process exit code out of Execute. Message may be
// empty when the failure has already been reported to the operator.
type ExitCodeError struct {
	Code    int
	Message string
}

func (e *ExitCodeError) Error() string {
	return e.Message
}

type ChogmCommand struct {
	Logger LagerFlag

	Recursive    bool          `short:"R" long:"recursive" description:"Recurse through the directory tree of each path."`
	Verbose      bool          `short:"v" long:"verbose" description:"Report each path as it is dispatched."`
	DrainTimeout time.Duration `long:"drain-timeout" description:"Kill a batching subprocess that has not drained within this duration. Zero waits forever."`
	XargsBin     string        `long:"xargs-bin" default:"xargs" description:"Batching dispatcher binary used to apply changes."`

	Positional struct {
		FilesSpec       string   `positional-arg-name:"files_spec" description:"owner:group:mode applied to files"`
		DirectoriesSpec string   `positional-arg-name:"directories_spec" description:"owner:group:mode applied to directories; '-' inherits owner or group from files_spec"`
		Paths           []string `positional-arg-name:"path" description:"paths to change; '-' reads a path list from stdin"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *ChogmCommand) Execute(args []string) error {
	return cmd.Run(linux_command_runner.New(), clock.NewClock(), os.Stdin, os.Stdout, os.Stderr)
}

func (cmd *ChogmCommand) Run(runner commandrunner.CommandRunner, clk clock.Clock, stdin io.Reader, stdout, stderr io.Writer) error {
	log, _ := cmd.Logger.Logger("chogm")
	runner = &logging.Runner{CommandRunner: runner, Logger: log}

	if len(cmd.Positional.Paths) == 0 {
		return &ExitCodeError{Code: 2, Message: "no paths given"}
	}

	fileSpec, err := ogm.ParseSpec(cmd.Positional.FilesSpec)
	if err != nil {
		return &ExitCodeError{Code: 2, Message: errors.Wrap(err, "files_spec").Error()}
	}

	dirSpec, err := ogm.ParseSpec(cmd.Positional.DirectoriesSpec)
	if err != nil {
		return &ExitCodeError{Code: 2, Message: errors.Wrap(err, "directories_spec").Error()}
	}

	dirSpec = ogm.ResolveInheritance(fileSpec, dirSpec)

	dispatcher := changer.NewChanger(log, runner, clk, fileSpec, dirSpec, changer.Config{
		XargsPath:    cmd.XargsBin,
		DrainTimeout: cmd.DrainTimeout,
		Verbose:      cmd.Verbose,
		ErrStream:    stderr,
		InfoStream:   stdout,
	})

	walk := &walker.Walker{Dispatcher: dispatcher, Recursive: cmd.Recursive}

	for _, path := range cmd.Positional.Paths {
		if path == "-" {
			walk.WalkList(stdin)
			continue
		}

		walk.Walk(path)
	}

	if code := dispatcher.Finish(); code != 0 {
		return &ExitCodeError{Code: code}
	}

	return nil
}

// PrintExitError writes a non-empty exit error to w, with a usage hint for
// invocation errors.
func PrintExitError(w io.Writer, err *ExitCodeError) {
	if err.Message == "" {
		return
	}

	fmt.Fprintln(w, err.Message)
	if err.Code == 2 {
		fmt.Fprintln(w, "for help use --help")
	}
}

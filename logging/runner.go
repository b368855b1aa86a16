// Package logging decorates a CommandRunner so every batching subprocess's
// lifecycle shows up in the debug log: argv on start, exit status on wait.
package logging

import (
	"os/exec"
	"syscall"

	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
)

type Runner struct {
	commandrunner.CommandRunner

	Logger lager.Logger
}

func (runner *Runner) Start(cmd *exec.Cmd) error {
	log := runner.Logger.Session("command", lager.Data{"argv": cmd.Args})

	log.Debug("starting")

	err := runner.CommandRunner.Start(cmd)
	if err != nil {
		log.Error("failed-to-start", err)
	}

	return err
}

func (runner *Runner) Wait(cmd *exec.Cmd) error {
	log := runner.Logger.Session("command", lager.Data{"argv": cmd.Args})

	err := runner.CommandRunner.Wait(cmd)

	data := lager.Data{}
	if state := cmd.ProcessState; state != nil {
		data["exit-status"] = state.Sys().(syscall.WaitStatus).ExitStatus()
	}

	if err != nil {
		log.Error("wait-failed", err, data)
	} else {
		log.Debug("exited", data)
	}

	return err
}

func (runner *Runner) Kill(cmd *exec.Cmd) error {
	runner.Logger.Info("killing-command", lager.Data{"argv": cmd.Args})

	return runner.CommandRunner.Kill(cmd)
}

package changer

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
)

// Operation selects which attribute a worker changes.
type Operation string

const (
	Chown Operation = "chown"
	Chgrp Operation = "chgrp"
	Chmod Operation = "chmod"
)

// TargetClass selects which class of file-system entry a worker serves.
type TargetClass string

const (
	Files       TargetClass = "files"
	Directories TargetClass = "directories"
)

// WorkerResult is produced exactly once per worker, after the worker has
// drained all submissions and its batching subprocess has exited.
type WorkerResult struct {
	ExitStatus int
	Stderr     string
}

// workItem is a tagged value: either a path to feed to the batching
// subprocess, or the stop sentinel that ends the intake loop.
type workItem struct {
	path string
	stop bool
}

// Worker owns one long-lived batching subprocess of the form
//
//	xargs <operation> <argument>
//
// started at construction time and fed newline-terminated paths over its
// standard input. One worker exists per (operation, target class) pair.
type Worker struct {
	operation Operation
	class     TargetClass
	argument  string

	runner       commandrunner.CommandRunner
	clock        clock.Clock
	drainTimeout time.Duration

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr *bytes.Buffer

	intake chan workItem
	result chan WorkerResult

	log lager.Logger
}

// StartWorker spawns the batching subprocess through the given runner and
// begins the intake loop. A spawn failure is returned to the caller; the
// worker is then dead and must not be used.
func StartWorker(log lager.Logger, runner commandrunner.CommandRunner, clk clock.Clock, operation Operation, class TargetClass, argument string, cfg Config) (*Worker, error) {
	log = log.Session("worker", lager.Data{"operation": operation, "class": class, "argument": argument})

	cmd := exec.Command(cfg.xargsPath(), string(operation), argument)

	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	cmd.Stdout = io.Discard

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "opening batch stdin pipe")
	}

	if err := runner.Start(cmd); err != nil {
		return nil, errors.Wrapf(err, "starting %s %s batch", operation, class)
	}

	log.Debug("started", lager.Data{"argv": cmd.Args})

	w := &Worker{
		operation: operation,
		class:     class,
		argument:  argument,

		runner:       runner,
		clock:        clk,
		drainTimeout: cfg.DrainTimeout,

		cmd:    cmd,
		stdin:  stdin,
		stderr: stderr,

		intake: make(chan workItem, cfg.intakeBuffer()),
		result: make(chan WorkerResult, 1),

		log: log,
	}

	go w.serve()

	return w, nil
}

// Submit enqueues a path for the batching subprocess. It never inspects the
// path. Submitting after Shutdown is a programming error.
func (w *Worker) Submit(path string) {
	w.intake <- workItem{path: path}
}

// Shutdown enqueues the stop sentinel and blocks until the intake loop has
// drained, the subprocess's stdin is closed, and the subprocess has exited.
// It must be called exactly once. With no drain timeout configured a hung
// batching subprocess stalls Shutdown indefinitely.
func (w *Worker) Shutdown() WorkerResult {
	w.intake <- workItem{stop: true}

	if w.drainTimeout <= 0 {
		return <-w.result
	}

	timer := w.clock.NewTimer(w.drainTimeout)
	defer timer.Stop()

	select {
	case result := <-w.result:
		return result
	case <-timer.C():
		err := errors.Errorf("%s did not drain within %s", w, w.drainTimeout)
		w.log.Error("drain-timed-out", err)

		if killErr := w.runner.Kill(w.cmd); killErr != nil {
			w.log.Error("killing-batch", killErr)
		}

		result := <-w.result
		if result.ExitStatus == 0 {
			result.ExitStatus = 1
		}
		if result.Stderr == "" {
			result.Stderr = err.Error()
		}

		return result
	}
}

func (w *Worker) String() string {
	return fmt.Sprintf("%s %s worker", w.operation, w.class)
}

// serve is the intake loop. It is the only goroutine that touches the
// subprocess's stdin, so no locking is needed around the writes.
func (w *Worker) serve() {
	var stdinErr error

	for {
		item := <-w.intake
		if item.stop {
			break
		}

		if stdinErr != nil {
			// the pipe is gone; keep draining so the dispatcher never blocks
			continue
		}

		if _, err := fmt.Fprintln(w.stdin, item.path); err != nil {
			stdinErr = err
			w.log.Error("writing-path", err, lager.Data{"path": item.path})
		}
	}

	if err := w.stdin.Close(); err != nil {
		w.log.Error("closing-batch-stdin", err)
	}

	waitErr := w.runner.Wait(w.cmd)

	status := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			if waitStatus, ok := exitErr.Sys().(syscall.WaitStatus); ok {
				status = waitStatus.ExitStatus()
			} else {
				status = 1
			}
		} else {
			status = 1
		}
	}

	stderrText := strings.TrimSpace(w.stderr.String())
	if status != 0 && stderrText == "" && waitErr != nil {
		stderrText = waitErr.Error()
	}

	w.log.Debug("drained", lager.Data{"exit-status": status})

	w.result <- WorkerResult{ExitStatus: status, Stderr: stderrText}
}

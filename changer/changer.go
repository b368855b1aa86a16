// Package changer implements chogm's batched-dispatch model: up to six
// long-lived workers, one per (operation, target class) pair, each feeding
// paths to its own xargs subprocess. The Changer routes discovered paths to
// the right workers and folds every outcome into a single exit code.
package changer

import (
	"fmt"
	"io"
	"os"
	"time"

	"code.cloudfoundry.org/chogm/ogm"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const defaultIntakeBuffer = 128

// Config carries the run-wide switches. It is passed explicitly into
// construction; there is no process-global state.
type Config struct {
	// XargsPath is the batching dispatcher binary. Defaults to "xargs".
	XargsPath string

	// IntakeBuffer is the per-worker submission channel capacity.
	IntakeBuffer int

	// DrainTimeout, when positive, kills a batching subprocess that has not
	// drained and exited within the given duration of Finish being called.
	// Zero means wait forever.
	DrainTimeout time.Duration

	// Verbose enables informational reporting.
	Verbose bool

	// ErrStream receives one line per recorded error. Defaults to stderr.
	ErrStream io.Writer

	// InfoStream receives verbose reporting. Defaults to stdout.
	InfoStream io.Writer
}

func (c Config) xargsPath() string {
	if c.XargsPath == "" {
		return "xargs"
	}
	return c.XargsPath
}

func (c Config) intakeBuffer() int {
	if c.IntakeBuffer <= 0 {
		return defaultIntakeBuffer
	}
	return c.IntakeBuffer
}

// BatchWorker is the Changer's view of one batching worker.
type BatchWorker interface {
	fmt.Stringer
	Submit(path string)
	Shutdown() WorkerResult
}

// Changer owns the full set of created workers and the accumulating error
// state for one run. Workers exist only for the non-empty fields of the two
// specs; absent fields never spawn a subprocess.
type Changer struct {
	log lager.Logger

	fileWorkers []BatchWorker
	dirWorkers  []BatchWorker

	hasError bool
	verbose  bool

	errStream  io.Writer
	infoStream io.Writer
}

// NewChanger starts one worker per non-empty spec field, in deterministic
// order (chown, chgrp, chmod; files before directories). A worker that fails
// to spawn is recorded as a run-level error and its slot left empty; the
// remaining workers still run.
func NewChanger(log lager.Logger, runner commandrunner.CommandRunner, clk clock.Clock, fileSpec, dirSpec ogm.Spec, cfg Config) *Changer {
	c := &Changer{
		log:        log.Session("changer"),
		verbose:    cfg.Verbose,
		errStream:  cfg.ErrStream,
		infoStream: cfg.InfoStream,
	}

	if c.errStream == nil {
		c.errStream = os.Stderr
	}
	if c.infoStream == nil {
		c.infoStream = os.Stdout
	}

	c.fileWorkers = c.startWorkers(runner, clk, Files, fileSpec, cfg)
	c.dirWorkers = c.startWorkers(runner, clk, Directories, dirSpec, cfg)

	return c
}

func (c *Changer) startWorkers(runner commandrunner.CommandRunner, clk clock.Clock, class TargetClass, spec ogm.Spec, cfg Config) []BatchWorker {
	var workers []BatchWorker

	for _, change := range []struct {
		operation Operation
		argument  string
	}{
		{Chown, spec.Owner},
		{Chgrp, spec.Group},
		{Chmod, spec.Mode},
	} {
		if change.argument == "" {
			continue
		}

		worker, err := StartWorker(c.log, runner, clk, change.operation, class, change.argument, cfg)
		if err != nil {
			c.RecordError(errors.Wrapf(err, "cannot batch %s for %s", change.operation, class).Error())
			continue
		}

		workers = append(workers, worker)
	}

	return workers
}

// ChangeFile submits path to every file-class worker.
func (c *Changer) ChangeFile(path string) {
	for _, worker := range c.fileWorkers {
		worker.Submit(path)
	}
}

// ChangeDirectory submits path to every directory-class worker.
func (c *Changer) ChangeDirectory(path string) {
	for _, worker := range c.dirWorkers {
		worker.Submit(path)
	}
}

// RecordError surfaces message to the operator and marks the run as failed.
// No error ever aborts the run; it only shows up in Finish's exit code.
func (c *Changer) RecordError(message string) {
	c.hasError = true
	fmt.Fprintln(c.errStream, message)
}

// RecordInfo surfaces message only when verbose reporting is enabled. It
// never affects the error state.
func (c *Changer) RecordInfo(message string) {
	if !c.verbose {
		return
	}
	fmt.Fprintln(c.infoStream, message)
}

// Finish shuts every worker down on the calling goroutine, records the
// captured stderr of each one that exited nonzero, and returns 1 if any
// error was ever recorded, else 0.
func (c *Changer) Finish() int {
	var merr *multierror.Error

	for _, worker := range append(c.fileWorkers, c.dirWorkers...) {
		result := worker.Shutdown()
		if result.ExitStatus == 0 {
			continue
		}

		c.RecordError(result.Stderr)
		merr = multierror.Append(merr, errors.Errorf("%s exited %d", worker, result.ExitStatus))
	}

	if err := merr.ErrorOrNil(); err != nil {
		c.log.Error("finish", err)
	}

	if c.hasError {
		return 1
	}

	return 0
}

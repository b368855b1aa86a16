package logging_test

import (
	"errors"
	"os/exec"

	"code.cloudfoundry.org/chogm/logging"
	"code.cloudfoundry.org/commandrunner/fake_command_runner"
	. "code.cloudfoundry.org/commandrunner/fake_command_runner/matchers"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logging Runner", func() {
	var (
		innerRunner *fake_command_runner.FakeCommandRunner
		logger      *lagertest.TestLogger

		runner *logging.Runner
	)

	BeforeEach(func() {
		innerRunner = fake_command_runner.New()
		logger = lagertest.NewTestLogger("test")

		runner = &logging.Runner{
			CommandRunner: innerRunner,
			Logger:        logger,
		}
	})

	Describe("Start", func() {
		It("delegates to the inner runner and logs the argv", func() {
			Expect(runner.Start(exec.Command("path-to-xargs", "chmod", "755"))).To(Succeed())

			Expect(innerRunner).To(HaveStartedExecuting(fake_command_runner.CommandSpec{
				Path: "path-to-xargs",
				Args: []string{"chmod", "755"},
			}))

			Expect(logger.TestSink.Logs()).NotTo(BeEmpty())
			Expect(logger.TestSink.Logs()[0].Data["argv"]).To(ConsistOf("path-to-xargs", "chmod", "755"))
		})

		It("logs a start failure", func() {
			innerRunner.WhenStarting(fake_command_runner.CommandSpec{}, func(cmd *exec.Cmd) error {
				return errors.New("banana")
			})

			Expect(runner.Start(exec.Command("path-to-xargs"))).To(MatchError("banana"))

			logs := logger.TestSink.Logs()
			Expect(logs[len(logs)-1].Message).To(ContainSubstring("failed-to-start"))
		})
	})

	Describe("Wait", func() {
		It("delegates to the inner runner", func() {
			cmd := exec.Command("path-to-xargs")

			Expect(runner.Wait(cmd)).To(Succeed())
			Expect(innerRunner.WaitedCommands()).To(ConsistOf(cmd))
		})

		It("propagates and logs a wait failure", func() {
			innerRunner.WhenWaitingFor(fake_command_runner.CommandSpec{}, func(cmd *exec.Cmd) error {
				return errors.New("exit status 1")
			})

			Expect(runner.Wait(exec.Command("path-to-xargs"))).To(MatchError("exit status 1"))

			logs := logger.TestSink.Logs()
			Expect(logs[len(logs)-1].Message).To(ContainSubstring("wait-failed"))
		})
	})

	Describe("Kill", func() {
		It("delegates to the inner runner", func() {
			cmd := exec.Command("path-to-xargs")

			Expect(runner.Kill(cmd)).To(Succeed())
			Expect(innerRunner).To(HaveKilled(fake_command_runner.CommandSpec{Path: "path-to-xargs"}))
		})
	})
})

package walker_test

import (
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/chogm/walker"
	"code.cloudfoundry.org/chogm/walker/walkerfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Walker", func() {
	var (
		dispatcher *walkerfakes.FakeDispatcher
		walk       *walker.Walker

		tmpDir string
	)

	BeforeEach(func() {
		dispatcher = new(walkerfakes.FakeDispatcher)
		walk = &walker.Walker{Dispatcher: dispatcher}

		var err error
		tmpDir, err = os.MkdirTemp("", "walker-test")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0644)).To(Succeed())
		Expect(os.MkdirAll(filepath.Join(tmpDir, "sub", "deeper"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(tmpDir, "sub", "b.txt"), []byte("b"), 0644)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	changedFiles := func() []string {
		var paths []string
		for i := 0; i < dispatcher.ChangeFileCallCount(); i++ {
			paths = append(paths, dispatcher.ChangeFileArgsForCall(i))
		}
		return paths
	}

	changedDirectories := func() []string {
		var paths []string
		for i := 0; i < dispatcher.ChangeDirectoryCallCount(); i++ {
			paths = append(paths, dispatcher.ChangeDirectoryArgsForCall(i))
		}
		return paths
	}

	Describe("Walk", func() {
		It("dispatches a file argument as a file", func() {
			walk.Walk(filepath.Join(tmpDir, "a.txt"))

			Expect(changedFiles()).To(ConsistOf(filepath.Join(tmpDir, "a.txt")))
			Expect(dispatcher.ChangeDirectoryCallCount()).To(BeZero())
		})

		It("dispatches a directory argument as a directory", func() {
			walk.Walk(tmpDir)

			Expect(changedDirectories()).To(ConsistOf(tmpDir))
			Expect(dispatcher.ChangeFileCallCount()).To(BeZero())
		})

		It("does not descend into a directory unless recursive", func() {
			walk.Walk(tmpDir)

			Expect(dispatcher.ChangeFileCallCount()).To(BeZero())
			Expect(changedDirectories()).To(HaveLen(1))
		})

		It("reports each dispatched path when asked", func() {
			walk.Walk(filepath.Join(tmpDir, "a.txt"))

			Expect(dispatcher.RecordInfoCallCount()).To(Equal(1))
			Expect(dispatcher.RecordInfoArgsForCall(0)).To(Equal(filepath.Join(tmpDir, "a.txt")))
		})

		Context("when recursive", func() {
			BeforeEach(func() {
				walk.Recursive = true
			})

			It("dispatches every entry of the tree to the matching class", func() {
				walk.Walk(tmpDir)

				Expect(changedFiles()).To(ConsistOf(
					filepath.Join(tmpDir, "a.txt"),
					filepath.Join(tmpDir, "sub", "b.txt"),
				))
				Expect(changedDirectories()).To(ConsistOf(
					tmpDir,
					filepath.Join(tmpDir, "sub"),
					filepath.Join(tmpDir, "sub", "deeper"),
				))
			})

			It("dispatches a directory before its children", func() {
				walk.Walk(tmpDir)

				Expect(dispatcher.ChangeDirectoryArgsForCall(0)).To(Equal(tmpDir))
				Expect(dispatcher.ChangeDirectoryArgsForCall(1)).To(Equal(filepath.Join(tmpDir, "sub")))
			})

			It("records no errors for a healthy tree", func() {
				walk.Walk(tmpDir)

				Expect(dispatcher.RecordErrorCallCount()).To(BeZero())
			})
		})

		Context("when the path does not exist", func() {
			It("records an access error and dispatches nothing", func() {
				walk.Walk(filepath.Join(tmpDir, "vanished"))

				Expect(dispatcher.RecordErrorCallCount()).To(Equal(1))
				Expect(dispatcher.RecordErrorArgsForCall(0)).To(Equal(
					"cannot access '" + filepath.Join(tmpDir, "vanished") + "': no such file or directory",
				))
				Expect(dispatcher.ChangeFileCallCount()).To(BeZero())
				Expect(dispatcher.ChangeDirectoryCallCount()).To(BeZero())
			})

			It("keeps walking sibling entries", func() {
				walk.Walk(filepath.Join(tmpDir, "vanished"))
				walk.Walk(filepath.Join(tmpDir, "a.txt"))

				Expect(changedFiles()).To(ConsistOf(filepath.Join(tmpDir, "a.txt")))
			})
		})
	})

	Describe("WalkList", func() {
		It("walks each newline-separated path", func() {
			list := strings.Join([]string{
				filepath.Join(tmpDir, "a.txt"),
				"",
				filepath.Join(tmpDir, "sub"),
			}, "\n")

			walk.WalkList(strings.NewReader(list))

			Expect(changedFiles()).To(ConsistOf(filepath.Join(tmpDir, "a.txt")))
			Expect(changedDirectories()).To(ConsistOf(filepath.Join(tmpDir, "sub")))
		})

		It("records an error for a listed path that cannot be accessed", func() {
			walk.WalkList(strings.NewReader("/does/not/exist\n"))

			Expect(dispatcher.RecordErrorCallCount()).To(Equal(1))
			Expect(dispatcher.RecordErrorArgsForCall(0)).To(ContainSubstring("no such file or directory"))
		})
	})
})

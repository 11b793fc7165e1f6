package cmd

import (
	"fmt"
	"os"

	"github.com/go-imsto/picbatch/batch"
	"github.com/go-imsto/picbatch/utils"
)

var cmdRename = &Command{
	UsageLine: "rename folder prefix",
	Short:     "rename a folder's jpeg files to prefix + sequence",
	Long: `
sort the jpeg files of a folder by name and rename each one to
prefix + zero-padded sequence + lowercased extension, for example
dog_001.jpg. an occupied target name is skipped, never overwritten.
`,
}

func init() {
	cmdRename.Run = runRename
}

func runRename(args []string) bool {
	if len(args) < 2 {
		return false
	}
	dir, prefix := args[0], args[1]

	if !utils.IsDir(dir) {
		errorf("folder not found: %s", dir)
		setExitStatus(1)
		return true
	}

	plan, err := batch.BuildRenamePlan(dir, prefix)
	if err != nil {
		errorf("scan failed: %s", err)
		setExitStatus(1)
		return true
	}
	if len(plan.Ops) == 0 {
		fmt.Println("no jpeg files found")
		return true
	}

	n, err := plan.Apply(os.Stdout)
	if err != nil {
		errorf("rename aborted: %s", err)
		setExitStatus(1)
		return true
	}
	fmt.Printf("done, %d of %d files renamed\n", n, len(plan.Ops))
	return true
}

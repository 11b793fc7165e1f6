package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-imsto/picbatch/batch"
	"github.com/go-imsto/picbatch/config"
	"github.com/go-imsto/picbatch/image"
	"github.com/go-imsto/picbatch/utils"
)

var cmdUltra = &Command{
	UsageLine: "ultra [-max-width N] [-max-height N] [-q N] [-backup] [-y] [folder ...]",
	Short:     "aggressive jpeg compression, size over fidelity",
	Long: `
same policy as compress with a harsher preset: smaller bounds, lower
quality, progressive encoding and maximal chroma subsampling. files are
overwritten in place; -backup copies each folder aside first.
`,
}

var (
	uMaxWidth  = cmdUltra.Flag.Int("max-width", config.Current.UltraMaxWidth, "max width in px")
	uMaxHeight = cmdUltra.Flag.Int("max-height", config.Current.UltraMaxHeight, "max height in px")
	uQuality   = cmdUltra.Flag.Int("q", config.Current.UltraQuality, "jpeg quality 1-100")
	uBackup    = cmdUltra.Flag.Bool("backup", false, "copy originals to <folder>_backup first")
	uYes       = cmdUltra.Flag.Bool("y", false, "skip the overwrite confirmation")
)

func init() {
	cmdUltra.Run = runUltra
}

func runUltra(args []string) bool {
	folders := args
	if len(folders) == 0 {
		folders = config.Current.Folders
	}

	fmt.Println("warning: aggressive mode, visible quality loss is expected")
	fmt.Printf("max size: %dx%d, quality: %d\n", *uMaxWidth, *uMaxHeight, *uQuality)

	if !*uBackup && !*uYes {
		fmt.Print("this overwrites the original files, continue? (y/n): ")
		var answer string
		fmt.Scanln(&answer)
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("cancelled")
			return true
		}
	}

	if *uBackup {
		for _, dir := range folders {
			if !utils.IsDir(dir) {
				continue
			}
			if n, err := batch.BackupFolder(dir); err != nil {
				errorf("backup of %s failed: %s", dir, err)
				setExitStatus(1)
				return true
			} else if n > 0 {
				fmt.Printf("backed up %d files from %s\n", n, dir)
			}
		}
	}

	p := batch.Params{
		MaxWidth:  uint(*uMaxWidth),
		MaxHeight: uint(*uMaxHeight),
		WriteOption: image.WriteOption{
			Quality:     image.ClampQuality(*uQuality),
			Optimize:    true,
			Progressive: true,
			Subsampling: image.Subsampling420,
			Quant:       image.QuantWebLow,
		},
		Checkpoint: 100,
		Out:        os.Stdout,
	}

	run := compressFolders(folders, p)

	if run.Files == 0 {
		fmt.Println("no image files found")
		return true
	}
	run.Summary(os.Stdout, "run")
	return true
}

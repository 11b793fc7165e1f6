package cmd

import (
	"fmt"
	"os"

	"github.com/go-imsto/picbatch/batch"
	"github.com/go-imsto/picbatch/config"
	"github.com/go-imsto/picbatch/image"
	"github.com/go-imsto/picbatch/utils"
)

var cmdCompress = &Command{
	UsageLine: "compress [-max-width N] [-max-height N] [-q N] [folder ...]",
	Short:     "resize and re-encode jpeg files in folders",
	Long: `
scan each folder for jpeg files, shrink the oversized ones to fit the
given bounds and re-encode everything at the given quality, in place.
folders default to the configured set.
`,
}

var (
	cMaxWidth  = cmdCompress.Flag.Int("max-width", config.Current.MaxWidth, "max width in px")
	cMaxHeight = cmdCompress.Flag.Int("max-height", config.Current.MaxHeight, "max height in px")
	cQuality   = cmdCompress.Flag.Int("q", config.Current.Quality, "jpeg quality 1-100")
)

func init() {
	cmdCompress.Run = runCompress
}

func runCompress(args []string) bool {
	folders := args
	if len(folders) == 0 {
		folders = config.Current.Folders
	}

	p := batch.Params{
		MaxWidth:  uint(*cMaxWidth),
		MaxHeight: uint(*cMaxHeight),
		WriteOption: image.WriteOption{
			Quality:  image.ClampQuality(*cQuality),
			Optimize: true,
		},
		Out: os.Stdout,
	}

	fmt.Printf("max size: %dx%d, quality: %d\n", *cMaxWidth, *cMaxHeight, *cQuality)

	run := compressFolders(folders, p)

	if run.Files == 0 {
		fmt.Println("no image files found")
		return true
	}
	run.Summary(os.Stdout, "run")
	return true
}

// compressFolders walks the folder list sequentially, folding each
// folder's totals into one run accumulator.
func compressFolders(folders []string, p batch.Params) (run batch.Totals) {
	for _, dir := range folders {
		if !utils.IsDir(dir) {
			fmt.Printf("warning: folder %s not found, skipping\n", dir)
			logger().Warnw("folder missing", "dir", dir)
			continue
		}
		t := batch.CompressFolder(dir, p)
		if t.Files > 0 {
			t.Summary(os.Stdout, dir)
		}
		run.Add(t)
	}
	return
}

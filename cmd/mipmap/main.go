package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/buzztimer/mipmap"
	"github.com/buzztimer/mipmap/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┬┌─┐┌┬┐┌─┐┌─┐
│││├─┘│││├─┤├─┘
┴ ┴┴┴  ┴ ┴┴ ┴┴

Fallback launcher icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", "res", "Resource directory receiving the mipmap-<density> folders")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of icons to render concurrently")
	verify      = flag.Bool("verify", false, "Decode the generated icons and check their dimensions")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	utils.NoColor = !isTerm

	gen := mipmap.NewGenerator(*destination)
	gen.Workers = *workers

	if isTerm {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⏰ MIPMAP", utils.StatusMessage),
			utils.DecorateText("⇢ rendering launcher icons...", utils.DefaultMessage),
		)
		gen.Spinner = utils.NewSpinner(os.Stderr, spinnerText, time.Millisecond*80, true)
	}

	// Exits the program on the first failed write.
	gen.Execute()

	if *verify {
		if err := mipmap.Verify(gen.BaseDir, gen.Densities, gen.Format); err != nil {
			log.Fatalf(utils.DecorateText("Verification failed: %v", utils.ErrorMessage), err)
		}
		fmt.Fprintf(os.Stderr, "%s\n", utils.DecorateText(
			fmt.Sprintf("Verified %d icons.", len(gen.Densities)*len(mipmap.Variants)),
			utils.SuccessMessage,
		))
	}
}

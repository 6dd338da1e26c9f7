package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"syscall"
	"time"

	circles "github.com/geraldsadya/Circles"
	"github.com/geraldsadya/Circles/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ │││││ ┬├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

App icon set generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

// spinner used to instantiate and call the progress indicator.
var spinner *utils.Spinner

var (
	// Flags
	outDir  = flag.String("out", "AppIcon.appiconset", "Output directory of the generated icon set")
	workers = flag.Int("conc", runtime.NumCPU(), "Number of icons to render concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	gen := &circles.Generator{
		Palette: circles.DefaultPalette(),
		OutDir:  *outDir,
		Workers: *workers,
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("is rendering the icon set...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*100, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	// Show the progress indicator on interactive terminals only.
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))

	now := time.Now()
	if isTerm {
		spinner.Start()
	}

	results, err := gen.Generate()

	if isTerm {
		spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
			utils.DecorateText("is rendering the icon set... ✔", utils.DefaultMessage))
		spinner.Stop()
	}

	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to generate the icon set: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	// Report every produced file together with its validation outcome.
	sort.Slice(results, func(i, j int) bool {
		return results[i].File.Path < results[j].File.Path
	})
	for _, res := range results {
		printStatus(res)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// printStatus displays the outcome of one generated file, running the
// packaging validation against the files that were written successfully.
func printStatus(res circles.FileResult) {
	name := filepath.Base(res.File.Path)

	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("✗ %s", name), utils.ErrorMessage),
			utils.DecorateText(res.Err.Error(), utils.DefaultMessage),
		)
		return
	}

	if v := circles.ValidateIcon(res.File.Path); !v.Valid {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("✗ %s", name), utils.ErrorMessage),
			utils.DecorateText(v.Reason, utils.DefaultMessage),
		)
		return
	}

	fmt.Fprintf(os.Stderr, "%s %s\n",
		utils.DecorateText(fmt.Sprintf("✓ %s", name), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("(%dx%d)", res.File.PixelSize, res.File.PixelSize), utils.DefaultMessage),
	)
}

// Command focuspeak renders a focus peaking overlay onto every frame of a
// video file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"focuspeak/pkg/peaking"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("focuspeak", flag.ExitOnError)
	output := fs.String("output", "", "output path (default <input>_focuspeaking.mp4)")
	threshold := fs.Int("threshold", peaking.DefaultThreshold, "edge response threshold, 0-255")
	colorHex := fs.String("color", "#FF0000", "highlight color as a hex code")
	alpha := fs.Float64("alpha", peaking.DefaultBlendAlpha, "overlay blend strength, 0-1")
	detectorName := fs.String("detector", "laplacian", "edge detector: laplacian or gradient")
	noClean := fs.Bool("no-clean", false, "skip the speckle-removal pass on the mask")
	label := fs.String("label", "", "burn a status label into each frame")
	probe := fs.Bool("probe", false, "print video properties and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: focuspeak [options] <input video>\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input video, got %d arguments", fs.NArg())
	}
	input := fs.Arg(0)

	if *probe {
		info, err := peaking.ProbeVideo(input)
		if err != nil {
			return err
		}
		seconds := 0.0
		if info.FPS > 0 {
			seconds = float64(info.FrameCount) / info.FPS
		}
		fmt.Printf("%s: %dx%d, %.2f FPS, %d frames, %.2fs\n",
			input, info.Width, info.Height, info.FPS, info.FrameCount, seconds)
		return nil
	}

	color, err := peaking.ParseHexColor(*colorHex)
	if err != nil {
		return err
	}
	detector, err := peaking.ParseDetector(*detectorName)
	if err != nil {
		return err
	}
	params := peaking.NewParams()
	params.Threshold = *threshold
	params.Color = color
	params.BlendAlpha = *alpha
	params.Detector = detector
	params.CleanMask = !*noClean
	if err := params.Validate(); err != nil {
		return err
	}

	dest := *output
	if dest == "" {
		dest = strings.TrimSuffix(input, filepath.Ext(input)) + "_focuspeaking.mp4"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := peaking.ProcessOptions{
		Params: params,
		Label:  *label,
		Progress: func(written, total int) {
			if written%100 == 0 {
				pct := 0.0
				if total > 0 {
					pct = 100 * float64(written) / float64(total)
				}
				log.Printf("Processed %d/%d frames (%.1f%%)", written, total, pct)
			}
		},
	}
	report, err := peaking.ProcessVideo(ctx, input, dest, opts)
	if err != nil {
		if report != nil && report.FramesWritten > 0 {
			return fmt.Errorf("%v (%d frames written to %s)", err, report.FramesWritten, dest)
		}
		return err
	}

	fmt.Println("=== Focus Peaking Results ===")
	fmt.Printf("Input:    %s (%dx%d @ %.2f FPS)\n",
		input, report.Info.Width, report.Info.Height, report.Info.FPS)
	fmt.Printf("Written:  %d frames\n", report.FramesWritten)
	fmt.Printf("Detector: %s (threshold %d, alpha %.2f)\n",
		params.Detector, params.Threshold, params.BlendAlpha)
	fmt.Printf("Output:   %s\n", dest)
	return nil
}

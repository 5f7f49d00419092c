//go:build !purego && !js

package peaking

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"
)

// ProbeVideo opens a video file, reads its properties and verifies that at
// least one frame decodes. The source is released before returning.
func ProbeVideo(path string) (*VideoInfo, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDecodeFailure, path, err)
	}
	defer capture.Close()
	if !capture.IsOpened() {
		return nil, fmt.Errorf("%w: could not open %s", ErrDecodeFailure, path)
	}

	info := &VideoInfo{
		Width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
		FPS:        capture.Get(gocv.VideoCaptureFPS),
		FrameCount: int(capture.Get(gocv.VideoCaptureFrameCount)),
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d in %s", ErrEmptySource, info.Width, info.Height, path)
	}

	frame := gocv.NewMat()
	defer frame.Close()
	if ok := capture.Read(&frame); !ok || frame.Empty() {
		return nil, fmt.Errorf("%w: no readable frames in %s", ErrEmptySource, path)
	}
	return info, nil
}

// ProcessVideo reads inputPath frame by frame in stream order, applies the
// peaking pipeline with the blended compositor output, and writes the result
// to outputPath at the source resolution and frame rate. Cancellation is
// honored at frame boundaries; frames already written stay intact. Source
// and destination handles are released on every return path.
func ProcessVideo(ctx context.Context, inputPath, outputPath string, opts ProcessOptions) (*ProcessReport, error) {
	params := opts.Params
	if params == nil {
		params = NewParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	capture, err := gocv.VideoCaptureFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDecodeFailure, inputPath, err)
	}
	defer capture.Close()
	if !capture.IsOpened() {
		return nil, fmt.Errorf("%w: could not open %s", ErrDecodeFailure, inputPath)
	}

	report := &ProcessReport{
		Info: VideoInfo{
			Width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
			Height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
			FPS:        capture.Get(gocv.VideoCaptureFPS),
			FrameCount: int(capture.Get(gocv.VideoCaptureFrameCount)),
		},
	}
	if report.Info.Width <= 0 || report.Info.Height <= 0 {
		return report, fmt.Errorf("%w: invalid dimensions %dx%d in %s",
			ErrEmptySource, report.Info.Width, report.Info.Height, inputPath)
	}

	writer, err := gocv.VideoWriterFile(outputPath, "mp4v", report.Info.FPS,
		report.Info.Width, report.Info.Height, true)
	if err != nil {
		return report, fmt.Errorf("%w: creating %s: %v", ErrWriteFailure, outputPath, err)
	}
	defer writer.Close()
	if !writer.IsOpened() {
		return report, fmt.Errorf("%w: could not open %s for writing", ErrWriteFailure, outputPath)
	}

	mat := gocv.NewMat()
	defer mat.Close()

	for {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("canceled after writing %d frames: %w", report.FramesWritten, err)
		}
		if ok := capture.Read(&mat); !ok || mat.Empty() {
			break
		}

		result, err := Apply(Frame{m: mat}, params)
		if err != nil {
			return report, fmt.Errorf("frame %d: %w", report.FramesWritten, err)
		}
		if opts.Label != "" {
			DrawLabel(result, opts.Label)
		}
		writeErr := writer.Write(result.m)
		result.Close()
		if writeErr != nil {
			return report, fmt.Errorf("%w: frame %d of %s: %v",
				ErrWriteFailure, report.FramesWritten, outputPath, writeErr)
		}

		report.FramesWritten++
		if opts.Progress != nil {
			opts.Progress(report.FramesWritten, report.Info.FrameCount)
		}
	}

	if report.FramesWritten == 0 {
		return report, fmt.Errorf("%w: no frames decoded from %s", ErrEmptySource, inputPath)
	}
	return report, nil
}

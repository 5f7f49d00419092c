//go:build purego || js

package peaking

import (
	"context"
	"errors"
)

// Video container I/O is delegated to OpenCV and is not available in the
// pure Go build; single-frame processing still works.
var errNoVideoBackend = errors.New("video processing requires the OpenCV build")

func ProbeVideo(string) (*VideoInfo, error) { return nil, errNoVideoBackend }

func ProcessVideo(context.Context, string, string, ProcessOptions) (*ProcessReport, error) {
	return nil, errNoVideoBackend
}

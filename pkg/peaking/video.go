package peaking

// VideoInfo describes an opened video source.
type VideoInfo struct {
	Width      int
	Height     int
	FPS        float64
	FrameCount int
}

// ProcessOptions configures a batch video run.
type ProcessOptions struct {
	// Params controls the peaking pipeline; nil selects NewParams defaults.
	Params *Params
	// Label, when non-empty, is burned into every output frame.
	Label string
	// Progress, when set, is called after each written frame with the number
	// of frames written so far and the source's reported frame count.
	Progress func(written, total int)
}

// ProcessReport summarizes a batch run. FramesWritten is valid even when the
// run fails partway through.
type ProcessReport struct {
	Info          VideoInfo
	FramesWritten int
}

// Package peaking applies a focus peaking overlay to frames: high-frequency
// (sharp-edge) regions are detected, thresholded into a focus mask and
// highlighted with a configurable color, mimicking a camera viewfinder aid.
//
// The pipeline has three pure stages, chained per frame:
//
//	response := peaking.ExtractEdgeResponse(frame, peaking.DetectorLaplacian)
//	defer response.Close()
//	mask := peaking.BuildMask(response, 30, true)
//	out := peaking.Composite(frame, mask, color, 0.8)
//
// or in one call with validated parameters:
//
//	out, err := peaking.Apply(frame, peaking.NewParams())
//
// Stages share no state between invocations. Frames may be processed from
// concurrent goroutines as long as each frame is owned by a single
// invocation; the batch video driver processes frames strictly in stream
// order.
//
// Two backends are selected at build time: the default build uses OpenCV via
// gocv for color conversion, convolution, image codecs and video I/O; the
// purego (or js) build tag selects a pure Go implementation covering still
// frames only.
package peaking

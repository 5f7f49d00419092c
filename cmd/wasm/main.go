//go:build js && wasm

package main

import (
	"syscall/js"

	"focuspeak/pkg/peaking"
)

func main() {
	js.Global().Set("processFrame", js.FuncOf(processFrame))
	select {} // block forever
}

// processFrame(imageBytes, options) applies the focus peaking overlay to an
// encoded image and returns the result as JPEG bytes in a Uint8Array.
// Recognized options: threshold, color, alpha, detector, cleanMask.
func processFrame(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("usage: processFrame(imageBytes, options)")
	}

	jsBytes := args[0]
	raw := make([]byte, jsBytes.Get("length").Int())
	js.CopyBytesToGo(raw, jsBytes)

	params := peaking.NewParams()
	if len(args) >= 2 && args[1].Type() == js.TypeObject {
		opts := args[1]
		if v := opts.Get("threshold"); v.Type() == js.TypeNumber {
			params.Threshold = v.Int()
		}
		if v := opts.Get("alpha"); v.Type() == js.TypeNumber {
			params.BlendAlpha = v.Float()
		}
		if v := opts.Get("color"); v.Type() == js.TypeString {
			color, err := peaking.ParseHexColor(v.String())
			if err != nil {
				return errorResult(err.Error())
			}
			params.Color = color
		}
		if v := opts.Get("detector"); v.Type() == js.TypeString {
			detector, err := peaking.ParseDetector(v.String())
			if err != nil {
				return errorResult(err.Error())
			}
			params.Detector = detector
		}
		if v := opts.Get("cleanMask"); v.Type() == js.TypeBoolean {
			params.CleanMask = v.Bool()
		}
	}
	if err := params.Validate(); err != nil {
		return errorResult(err.Error())
	}

	frame, err := peaking.DecodeFrame(raw)
	if err != nil {
		return errorResult(err.Error())
	}
	defer frame.Close()

	result, err := peaking.Apply(frame, params)
	if err != nil {
		return errorResult(err.Error())
	}
	defer result.Close()

	jpeg, err := result.EncodeJPEG()
	if err != nil {
		return errorResult(err.Error())
	}

	out := js.Global().Get("Uint8Array").New(len(jpeg))
	js.CopyBytesToJS(out, jpeg)
	return out
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{
		"error": msg,
	})
}

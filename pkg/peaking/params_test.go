package peaking

import "testing"

func TestNewParamsDefaults(t *testing.T) {
	p := NewParams()
	if p.Threshold != 30 {
		t.Errorf("Threshold = %d, want 30", p.Threshold)
	}
	if p.Color != (HighlightColor{B: 0, G: 0, R: 255}) {
		t.Errorf("Color = %+v, want pure red", p.Color)
	}
	if p.BlendAlpha != 0.8 {
		t.Errorf("BlendAlpha = %g, want 0.8", p.BlendAlpha)
	}
	if p.Detector != DetectorLaplacian {
		t.Errorf("Detector = %v, want laplacian", p.Detector)
	}
	if !p.CleanMask {
		t.Error("CleanMask = false, want true")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(*Params) {}, false},
		{"threshold low bound", func(p *Params) { p.Threshold = 0 }, false},
		{"threshold high bound", func(p *Params) { p.Threshold = 255 }, false},
		{"threshold negative", func(p *Params) { p.Threshold = -1 }, true},
		{"threshold too high", func(p *Params) { p.Threshold = 256 }, true},
		{"alpha zero", func(p *Params) { p.BlendAlpha = 0 }, false},
		{"alpha one", func(p *Params) { p.BlendAlpha = 1 }, false},
		{"alpha negative", func(p *Params) { p.BlendAlpha = -0.1 }, true},
		{"alpha above one", func(p *Params) { p.BlendAlpha = 1.1 }, true},
		{"bad detector", func(p *Params) { p.Detector = Detector(7) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDetector(t *testing.T) {
	if d, err := ParseDetector("laplacian"); err != nil || d != DetectorLaplacian {
		t.Errorf("ParseDetector(laplacian) = %v, %v", d, err)
	}
	if d, err := ParseDetector("gradient"); err != nil || d != DetectorGradient {
		t.Errorf("ParseDetector(gradient) = %v, %v", d, err)
	}
	if _, err := ParseDetector("canny"); err == nil {
		t.Error("ParseDetector(canny) succeeded, want error")
	}
}

func TestDetectorString(t *testing.T) {
	if got := DetectorLaplacian.String(); got != "laplacian" {
		t.Errorf("String() = %q", got)
	}
	if got := DetectorGradient.String(); got != "gradient" {
		t.Errorf("String() = %q", got)
	}
}

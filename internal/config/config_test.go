package config

import (
	"os"
	"path/filepath"
	"testing"

	"focuspeak/pkg/peaking"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	p, err := cfg.PeakingParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.Threshold != peaking.DefaultThreshold || p.Detector != peaking.DetectorLaplacian {
		t.Errorf("unexpected default params: %+v", p)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", cfg.Host)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	body := []byte(`
host: 127.0.0.1
port: 9000
peaking:
  threshold: 50
  color: "#00FF00"
  detector: gradient
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 9000 {
		t.Errorf("addr = %s:%d, want 127.0.0.1:9000", cfg.Host, cfg.Port)
	}
	// Unset fields keep their defaults.
	if cfg.BodyLimitMB != 32 {
		t.Errorf("BodyLimitMB = %d, want 32", cfg.BodyLimitMB)
	}
	p, err := cfg.PeakingParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.Threshold != 50 || p.Detector != peaking.DetectorGradient {
		t.Errorf("params = %+v", p)
	}
	if p.Color != (peaking.HighlightColor{G: 255}) {
		t.Errorf("Color = %+v, want pure green", p.Color)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad port", "port: 70000\n"},
		{"bad color", "peaking:\n  color: nope\n"},
		{"bad detector", "peaking:\n  detector: canny\n"},
		{"bad threshold", "peaking:\n  threshold: 300\n"},
		{"not yaml", "{{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load accepted an invalid config")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

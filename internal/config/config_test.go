package config

import (
	"runtime"
	"testing"

	"rawbatch/internal/domain"
)

func baseFlags() Flags {
	f := DefaultFlags()
	f.Input = "in"
	f.Output = "out"
	return f
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RAWBATCH_WORKERS", "")
	t.Setenv("RAWBATCH_DCRAW", "")
	cfg, err := Load(baseFlags())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Policy.OnRaw != domain.ActionParse || cfg.Policy.OnImage != domain.ActionCopy || cfg.Policy.OnFile != domain.ActionCopy {
		t.Fatalf("unexpected policy %+v", cfg.Policy)
	}
	if cfg.Policy.OnExisting != domain.ExistingIgnore {
		t.Fatalf("expected ignore on existing")
	}
	if cfg.Encoder.Format != domain.FormatJPEG || cfg.Encoder.Quality != 90 {
		t.Fatalf("unexpected encoder %+v", cfg.Encoder)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Fatalf("expected %d workers, got %d", runtime.NumCPU(), cfg.Workers)
	}
	if cfg.Dcraw != "dcraw" {
		t.Fatalf("expected dcraw binary, got %q", cfg.Dcraw)
	}
}

func TestLoadEnvFallbacks(t *testing.T) {
	t.Setenv("RAWBATCH_OUTPUT", "/tmp/out")
	t.Setenv("RAWBATCH_WORKERS", "3")
	t.Setenv("RAWBATCH_VERBOSE", "yes")
	t.Setenv("RAWBATCH_DCRAW", "/opt/dcraw")

	f := DefaultFlags()
	f.Input = "in"
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output != "/tmp/out" || cfg.Workers != 3 || !cfg.Verbose || cfg.Dcraw != "/opt/dcraw" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	t.Setenv("RAWBATCH_WORKERS", "3")
	f := baseFlags()
	f.Workers = 1
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Workers != 1 {
		t.Fatalf("expected flag value, got %d", cfg.Workers)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("RAWBATCH_OUTPUT", "")
	cases := map[string]func(*Flags){
		"missing input":  func(f *Flags) { f.Input = "" },
		"missing output": func(f *Flags) { f.Output = "" },
		"parse images":   func(f *Flags) { f.Images = "parse" },
		"parse files":    func(f *Flags) { f.Files = "parse" },
		"bad raws":       func(f *Flags) { f.Raws = "convert" },
		"bad existing":   func(f *Flags) { f.Existing = "overwrite" },
		"bad encoder":    func(f *Flags) { f.Encoder = "webp" },
		"bad quality":    func(f *Flags) { f.Quality = 101 },
		"bad filter":     func(f *Flags) { f.Encoder = "png"; f.PNGFilter = "paeth" },
		"bad level":      func(f *Flags) { f.Encoder = "png"; f.PNGCompression = "max" },
		"negative jobs":  func(f *Flags) { f.Workers = -2 },
		"zero limit":     func(f *Flags) { f.RenameLimit = 0 },
	}
	for name, mutate := range cases {
		f := baseFlags()
		mutate(&f)
		if _, err := Load(f); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadPNGEncoder(t *testing.T) {
	f := baseFlags()
	f.Encoder = "png"
	f.PNGCompression = "best"
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Encoder.Format != domain.FormatPNG || cfg.Encoder.Compression != domain.PNGCompressionBest {
		t.Fatalf("unexpected encoder %+v", cfg.Encoder)
	}
	if cfg.Encoder.Extension() != ".png" {
		t.Fatalf("unexpected extension %q", cfg.Encoder.Extension())
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"rawbatch/internal/domain"
)

// DefaultRenameLimit bounds the unused-path search.
const DefaultRenameLimit = 10000

// Flags holds the raw command-line values before validation.
type Flags struct {
	Input          string
	Output         string
	Raws           string
	Images         string
	Files          string
	Existing       string
	Encoder        string
	Quality        int
	PNGCompression string
	PNGFilter      string
	// Workers of zero means RAWBATCH_WORKERS or the CPU count.
	Workers        int
	Verbose        bool
	Progress       bool
	RawExtensions  []string
	ImgExtensions  []string
	Dcraw          string
	RenameLimit    int
}

func DefaultFlags() Flags {
	return Flags{
		Raws:           "parse",
		Images:         "copy",
		Files:          "copy",
		Existing:       "ignore",
		Encoder:        "jpeg",
		Quality:        90,
		PNGCompression: "default",
		PNGFilter:      "adaptive",
		RawExtensions:  domain.DefaultRawExtensions,
		ImgExtensions:  domain.DefaultImageExtensions,
		RenameLimit:    DefaultRenameLimit,
	}
}

type Config struct {
	Input       string
	Output      string
	Policy      domain.Policy
	Encoder     domain.EncoderConfig
	Workers     int
	Verbose     bool
	Progress    bool
	Classifier  domain.Classifier
	Dcraw       string
	RenameLimit int
}

// Load validates flags and fills unset values from the environment.
func Load(f Flags) (Config, error) {
	if f.Output == "" {
		f.Output = envOrEmpty("RAWBATCH_OUTPUT")
	}
	if !f.Verbose {
		f.Verbose = envTruthy("RAWBATCH_VERBOSE")
	}
	if f.Workers == 0 {
		if value := envOrEmpty("RAWBATCH_WORKERS"); value != "" {
			workers, err := strconv.Atoi(value)
			if err != nil {
				return Config{}, fmt.Errorf("invalid RAWBATCH_WORKERS %q", value)
			}
			f.Workers = workers
		} else {
			f.Workers = runtime.NumCPU()
		}
	}
	if f.Dcraw == "" {
		f.Dcraw = envOrEmpty("RAWBATCH_DCRAW")
	}

	if f.Input == "" {
		return Config{}, errors.New("input path is required")
	}
	if f.Output == "" {
		return Config{}, errors.New("output path is required")
	}
	if f.Workers < 1 {
		return Config{}, fmt.Errorf("workers must be at least 1, got %d", f.Workers)
	}
	if f.RenameLimit < 1 {
		return Config{}, fmt.Errorf("rename limit must be at least 1, got %d", f.RenameLimit)
	}

	policy, err := parsePolicy(f)
	if err != nil {
		return Config{}, err
	}
	encoder, err := parseEncoder(f)
	if err != nil {
		return Config{}, err
	}

	dcraw := f.Dcraw
	if dcraw == "" {
		dcraw = "dcraw"
	}

	return Config{
		Input:       f.Input,
		Output:      f.Output,
		Policy:      policy,
		Encoder:     encoder,
		Workers:     f.Workers,
		Verbose:     f.Verbose,
		Progress:    f.Progress,
		Classifier:  domain.NewClassifier(f.RawExtensions, f.ImgExtensions),
		Dcraw:       dcraw,
		RenameLimit: f.RenameLimit,
	}, nil
}

func parsePolicy(f Flags) (domain.Policy, error) {
	var policy domain.Policy
	var err error
	if policy.OnRaw, err = domain.ParseAction(f.Raws, true); err != nil {
		return policy, fmt.Errorf("--raws: %w", err)
	}
	if policy.OnImage, err = domain.ParseAction(f.Images, false); err != nil {
		return policy, fmt.Errorf("--images: %w", err)
	}
	if policy.OnFile, err = domain.ParseAction(f.Files, false); err != nil {
		return policy, fmt.Errorf("--files: %w", err)
	}
	if policy.OnExisting, err = domain.ParseExistingAction(f.Existing); err != nil {
		return policy, fmt.Errorf("--existing: %w", err)
	}
	return policy, nil
}

func parseEncoder(f Flags) (domain.EncoderConfig, error) {
	format, err := domain.ParseFormat(f.Encoder)
	if err != nil {
		return domain.EncoderConfig{}, fmt.Errorf("--encoder: %w", err)
	}

	var cfg domain.EncoderConfig
	switch format {
	case domain.FormatPNG:
		compression, err := domain.ParsePNGCompression(f.PNGCompression)
		if err != nil {
			return cfg, fmt.Errorf("--png-compression: %w", err)
		}
		filter, err := domain.ParsePNGFilter(f.PNGFilter)
		if err != nil {
			return cfg, fmt.Errorf("--png-filter: %w", err)
		}
		cfg = domain.PNG(compression, filter)
	case domain.FormatTIFF:
		cfg = domain.TIFF()
	default:
		cfg = domain.JPEG(f.Quality)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("--quality: %w", err)
	}
	return cfg, nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}

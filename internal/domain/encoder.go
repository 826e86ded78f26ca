package domain

import (
	"fmt"
	"strings"
)

// Format selects the output image codec for parsed raw files.
type Format int

const (
	FormatJPEG Format = iota
	FormatPNG
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatTIFF:
		return "tiff"
	default:
		return "jpeg"
	}
}

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	default:
		return FormatJPEG, fmt.Errorf("unknown encoder %q", value)
	}
}

// PNGCompression mirrors the levels image/png exposes.
type PNGCompression int

const (
	PNGCompressionDefault PNGCompression = iota
	PNGCompressionNone
	PNGCompressionFast
	PNGCompressionBest
)

func ParsePNGCompression(value string) (PNGCompression, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "default", "":
		return PNGCompressionDefault, nil
	case "none":
		return PNGCompressionNone, nil
	case "fast":
		return PNGCompressionFast, nil
	case "best":
		return PNGCompressionBest, nil
	default:
		return PNGCompressionDefault, fmt.Errorf("unknown png compression %q", value)
	}
}

// PNGFilter is the row filter strategy. image/png chooses the filter per row,
// so adaptive is the only strategy on offer.
type PNGFilter int

const (
	PNGFilterAdaptive PNGFilter = iota
)

func ParsePNGFilter(value string) (PNGFilter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "adaptive", "":
		return PNGFilterAdaptive, nil
	default:
		return PNGFilterAdaptive, fmt.Errorf("unsupported png filter %q (only adaptive is available)", value)
	}
}

// EncoderConfig is a tagged variant: Quality applies to JPEG, Compression and
// Filter to PNG, TIFF takes no options.
type EncoderConfig struct {
	Format      Format
	Quality     int
	Compression PNGCompression
	Filter      PNGFilter
}

func JPEG(quality int) EncoderConfig {
	return EncoderConfig{Format: FormatJPEG, Quality: quality}
}

func PNG(compression PNGCompression, filter PNGFilter) EncoderConfig {
	return EncoderConfig{Format: FormatPNG, Compression: compression, Filter: filter}
}

func TIFF() EncoderConfig {
	return EncoderConfig{Format: FormatTIFF}
}

// Extension is the output file extension, including the dot.
func (c EncoderConfig) Extension() string {
	switch c.Format {
	case FormatPNG:
		return ".png"
	case FormatTIFF:
		return ".tiff"
	default:
		return ".jpg"
	}
}

func (c EncoderConfig) Validate() error {
	if c.Format == FormatJPEG && (c.Quality < 0 || c.Quality > 100) {
		return fmt.Errorf("jpeg quality must be between 0 and 100, got %d", c.Quality)
	}
	return nil
}

// PixelBuffer is a decoded image: 8-bit RGB samples in row-major order.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

func (b PixelBuffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height*3 {
		return fmt.Errorf("expected %d samples for %dx%d, got %d", b.Width*b.Height*3, b.Width, b.Height, len(b.Pix))
	}
	return nil
}

// CameraInfo is the subset of EXIF data shown by the info command.
type CameraInfo struct {
	Make  string
	Model string
}

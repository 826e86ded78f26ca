// Package encode writes decoded pixel buffers as JPEG, PNG or TIFF files.
package encode

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/tiff"

	"rawbatch/internal/domain"
)

// Encoder is stateless and safe for concurrent use.
type Encoder struct{}

// Encode creates or truncates path and writes buf into it. On failure the
// partially written file is left behind.
func (Encoder) Encode(buf domain.PixelBuffer, path string, cfg domain.EncoderConfig) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)

	if err := Write(w, buf.RGBA(), cfg); err != nil {
		_ = file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Write encodes img to w in the configured format.
func Write(w io.Writer, img image.Image, cfg domain.EncoderConfig) error {
	switch cfg.Format {
	case domain.FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: cfg.Quality})
	case domain.FormatPNG:
		enc := png.Encoder{CompressionLevel: pngLevel(cfg.Compression)}
		return enc.Encode(w, img)
	case domain.FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unsupported format %v", cfg.Format)
	}
}

func pngLevel(c domain.PNGCompression) png.CompressionLevel {
	switch c {
	case domain.PNGCompressionNone:
		return png.NoCompression
	case domain.PNGCompressionFast:
		return png.BestSpeed
	case domain.PNGCompressionBest:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

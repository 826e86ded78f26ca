// Package raw decodes camera raw files by running dcraw and reading the TIFF
// it writes to stdout.
package raw

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/image/tiff"

	"rawbatch/internal/domain"
)

// DefaultArgs asks dcraw for camera white balance, 8-bit TIFF on stdout.
// -w = use camera white balance
// -T = write TIFF instead of PPM
// -c = write to stdout
var DefaultArgs = []string{"-w", "-T", "-c"}

type Decoder struct {
	// Binary is the dcraw executable, looked up in PATH when not absolute.
	Binary string
	// Args replaces DefaultArgs when set. The input path is appended.
	Args []string
}

func (d Decoder) Decode(ctx context.Context, path string) (domain.PixelBuffer, error) {
	binary := d.Binary
	if binary == "" {
		binary = "dcraw"
	}
	args := d.Args
	if len(args) == 0 {
		args = DefaultArgs
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, append(append([]string{}, args...), path)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return domain.PixelBuffer{}, fmt.Errorf("%s failed: %v, stderr: %s", binary, err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return domain.PixelBuffer{}, fmt.Errorf("%s produced no output", binary)
	}

	img, err := tiff.Decode(bytes.NewReader(stdout.Bytes()))
	if err != nil {
		return domain.PixelBuffer{}, fmt.Errorf("read %s output: %w", binary, err)
	}

	buf := domain.PixelBufferFrom(img)
	if err := buf.Validate(); err != nil {
		return domain.PixelBuffer{}, err
	}
	return buf, nil
}

// Available reports whether the configured dcraw binary can be found.
func (d Decoder) Available() bool {
	binary := d.Binary
	if binary == "" {
		binary = "dcraw"
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

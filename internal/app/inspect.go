package app

import (
	"context"
	"errors"
	"time"

	"rawbatch/internal/domain"
	appErrors "rawbatch/internal/errors"
)

// Inspection describes a single decoded raw file.
type Inspection struct {
	Path       string
	Pixels     domain.PixelBuffer
	Camera     domain.CameraInfo
	DecodeTime time.Duration
	// ExifErr is set when the camera could not be read. The decode result is
	// still valid.
	ExifErr error
}

type Inspector struct {
	Decoder RawDecoder
	Exif    ExifReader
	Timer   Timer
}

// Inspect decodes path and reads its camera metadata. Only a decode failure is
// returned as an error.
func (i *Inspector) Inspect(ctx context.Context, path string) (Inspection, error) {
	if i.Decoder == nil {
		return Inspection{}, errors.New("inspector requires Decoder")
	}
	timer := i.Timer
	if timer == nil {
		timer = WallTimer
	}

	result := Inspection{Path: path}
	elapsed, err := timer("decode", path, func() error {
		var decodeErr error
		result.Pixels, decodeErr = i.Decoder.Decode(ctx, path)
		return decodeErr
	})
	if err != nil {
		return Inspection{}, appErrors.Wrap(appErrors.DecodeFailure, "decode", path, err)
	}
	result.DecodeTime = elapsed

	if i.Exif != nil {
		camera, err := i.Exif.CameraInfo(ctx, path)
		if err != nil {
			result.ExifErr = appErrors.Wrap(appErrors.ExifFailure, "exif", path, err)
		} else {
			result.Camera = camera
		}
	}
	return result, nil
}

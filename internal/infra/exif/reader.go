package exif

import (
	"context"
	"errors"
	"os"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"

	"rawbatch/internal/domain"
)

type Reader struct{}

// CameraInfo reads the camera make and model. TIFF-based raw formats (CR2,
// NEF, ARW, DNG) carry them in IFD0 like any JPEG.
func (Reader) CameraInfo(ctx context.Context, path string) (domain.CameraInfo, error) {
	select {
	case <-ctx.Done():
		return domain.CameraInfo{}, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.CameraInfo{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return domain.CameraInfo{}, err
	}

	info := domain.CameraInfo{
		Make:  stringTag(x, goexif.Make),
		Model: stringTag(x, goexif.Model),
	}
	if info.Make == "" && info.Model == "" {
		return domain.CameraInfo{}, errors.New("exif camera model not found")
	}
	return info, nil
}

func stringTag(x *goexif.Exif, name goexif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	value, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(value, "\x00"))
}

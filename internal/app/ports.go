package app

import (
	"context"
	"io/fs"

	"rawbatch/internal/domain"
)

type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
	MoveFile(src, dst string) error
}

// DirectoryWalker lists every entry below root, files and directories alike.
type DirectoryWalker interface {
	ListRecursively(root string) ([]string, error)
}

type RawDecoder interface {
	Decode(ctx context.Context, path string) (domain.PixelBuffer, error)
}

// ImageEncoder writes buf to path, creating or truncating the file.
type ImageEncoder interface {
	Encode(buf domain.PixelBuffer, path string, cfg domain.EncoderConfig) error
}

type ExifReader interface {
	CameraInfo(ctx context.Context, path string) (domain.CameraInfo, error)
}

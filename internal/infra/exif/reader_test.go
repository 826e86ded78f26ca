package exif

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// buildExifTIFF returns a little-endian TIFF block with Model and DateTime.
func buildExifTIFF() []byte {
	var tiff bytes.Buffer
	tiff.Write([]byte{0x49, 0x49, 0x2a, 0x00})
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(8))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(2))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(0x0110))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(2))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(8))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(38))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(0x0132))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(2))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(20))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(46))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(0))
	tiff.Write([]byte("TestCam\x00"))
	tiff.Write([]byte("2024:01:02 03:04:05\x00"))
	return tiff.Bytes()
}

func TestCameraInfoFromTIFFBasedRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.CR2")
	if err := os.WriteFile(path, buildExifTIFF(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	info, err := Reader{}.CameraInfo(context.Background(), path)
	if err != nil {
		t.Fatalf("camera info: %v", err)
	}
	if info.Model != "TestCam" {
		t.Fatalf("expected model TestCam, got %q", info.Model)
	}
}

func TestCameraInfoMissingFile(t *testing.T) {
	if _, err := (Reader{}).CameraInfo(context.Background(), filepath.Join(t.TempDir(), "missing.CR2")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCameraInfoHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Reader{}).CameraInfo(ctx, "unused"); err == nil {
		t.Fatalf("expected context error")
	}
}

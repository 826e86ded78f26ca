package domain

import (
	"path/filepath"
	"strings"
)

// FileKind is the semantic kind of an input file, derived from its extension.
type FileKind int

const (
	KindOther FileKind = iota
	KindRaw
	KindImage
)

func (k FileKind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindImage:
		return "image"
	default:
		return "other"
	}
}

// DefaultRawExtensions lists the camera raw formats recognised out of the box.
var DefaultRawExtensions = []string{"arw", "cr2", "cr3", "nef", "nrw", "raf", "rw2", "orf", "dng", "srf"}

// DefaultImageExtensions lists already-rendered image formats.
var DefaultImageExtensions = []string{"jpg", "jpeg", "png", "tif", "tiff"}

// Classifier maps paths to a FileKind. The zero value classifies everything as
// KindOther; use NewClassifier.
type Classifier struct {
	raw   map[string]struct{}
	image map[string]struct{}
}

// NewClassifier builds a classifier from two extension sets. Extensions are
// matched case-insensitively and may be given with or without a leading dot.
// The raw set wins when an extension appears in both.
func NewClassifier(rawExts, imageExts []string) Classifier {
	return Classifier{
		raw:   extensionSet(rawExts),
		image: extensionSet(imageExts),
	}
}

// DefaultClassifier uses DefaultRawExtensions and DefaultImageExtensions.
func DefaultClassifier() Classifier {
	return NewClassifier(DefaultRawExtensions, DefaultImageExtensions)
}

func (c Classifier) Classify(path string) FileKind {
	ext := normalizeExtension(filepath.Ext(path))
	if ext == "" {
		return KindOther
	}
	if _, ok := c.raw[ext]; ok {
		return KindRaw
	}
	if _, ok := c.image[ext]; ok {
		return KindImage
	}
	return KindOther
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		if norm := normalizeExtension(ext); norm != "" {
			set[norm] = struct{}{}
		}
	}
	return set
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

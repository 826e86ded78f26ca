package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapNilIsNil(t *testing.T) {
	if err := Wrap(CopyFailure, "copy", "/a", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestKindOfSurvivesFmtWrapping(t *testing.T) {
	base := stderrors.New("disk full")
	err := fmt.Errorf("job: %w", Wrap(EncodeFailure, "encode", "/out/a.jpg", base))

	if got := KindOf(err); got != EncodeFailure {
		t.Fatalf("expected %s, got %s", EncodeFailure, got)
	}
	if !stderrors.Is(err, base) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
	if got := KindOf(base); got != Internal {
		t.Fatalf("plain errors should be internal, got %s", got)
	}
}

func TestUserMessageNamesPath(t *testing.T) {
	err := Wrap(DecodeFailure, "decode", "/in/photo.CR2", stderrors.New("bad header"))
	msg := UserMessage(err)
	if !strings.Contains(msg, "/in/photo.CR2") || !strings.Contains(msg, "bad header") {
		t.Fatalf("unexpected message %q", msg)
	}
}

package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestVerbosefIsSilentByDefault(t *testing.T) {
	var out bytes.Buffer
	log := New(&out, nil, false)
	log.Verbosef("hidden %d", 1)
	log.Measure("step")()
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestErrorfFallsBackToWriter(t *testing.T) {
	var out bytes.Buffer
	log := New(&out, nil, false)
	log.Errorf("Unable to copy %s", "a.txt")
	if got := out.String(); got != "Unable to copy a.txt\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestConcurrentWritesKeepLinesIntact(t *testing.T) {
	var out bytes.Buffer
	log := New(&out, &out, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				log.Verbosef("line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 400 {
		t.Fatalf("expected 400 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if line != "Verbose: line" {
			t.Fatalf("garbled line %q", line)
		}
	}
}

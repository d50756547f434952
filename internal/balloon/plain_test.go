package balloon

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mfenerich/duplicate-letter-fest/internal/result"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	res := result.New("banana", []string{"a", "n"}, 100*time.Microsecond, nil)
	if err := PrintSummary(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Summary:") {
		t.Fatalf("expected Summary header, got %q", out)
	}
	if !strings.Contains(out, "  Input text") {
		t.Fatalf("expected indented summary lines, got %q", out)
	}
	if !strings.Contains(out, "a, n") {
		t.Fatalf("expected duplicates line, got %q", out)
	}
}

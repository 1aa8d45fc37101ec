package regops

import (
	"bytes"
	"strings"
	"testing"

	"github.com/platinasystems/log"
)

func TestLogPriority(t *testing.T) {
	var buf bytes.Buffer
	log.Tee(&buf)
	defer log.Tee(nil)

	e := &Engine{}
	e.errorf("invalid regop offset: 0x%x", 0x401)
	e.debugf("hidden %d", 1)
	out := buf.String()
	if !strings.Contains(out, "regops: invalid regop offset: 0x401") {
		t.Errorf("errorf: got %q", out)
	}
	if !strings.HasPrefix(out, "<11>") {
		t.Errorf("errorf: got %q, want user.err priority", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debugf logged without debug: %q", out)
	}
}

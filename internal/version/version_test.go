package version

import (
	"strings"
	"testing"
)

func TestVersionHasDefault(t *testing.T) {
	if Version == "" {
		t.Fatalf("Version must have a default value")
	}
	// The default carries color escapes when a terminal is attached;
	// the digits must be present either way.
	for _, part := range []string{"0", "1"} {
		if !strings.Contains(Version, part) {
			t.Fatalf("Version %q missing %q", Version, part)
		}
	}
}

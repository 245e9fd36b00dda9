package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Calculator is a small but complete Skiff program exercising every
// statement form of the grammar.
const Calculator = `
// integer-ish calculator helpers
function add(a, b) {
	return a + b;
}

function clamp(value, low, high) {
	if (value < low) {
		return low;
	}
	if (value > high) {
		return high;
	}
	return value;
}

var total = 0;
var step = 1;

while (total < 100) {
	total = add(total, step);
	step = step * 2;
}

var label = total >= 100 ? "done" : "running";
`

// ControlFlow exercises nested branches, logical operators and call chains.
const ControlFlow = `
function pick(flag) {
	if (flag && total > 0 || !done) {
		notify("picked")("twice");
	} else {
		reset();
	}
	return null;
}
`

// TempDir creates a temp directory with files and registers cleanup with
// t.Cleanup. Returns the path to the created directory.
func TempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "script_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

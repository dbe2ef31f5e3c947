package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/arborlab/morpho/pkg/errors"
)

const goodSWC = `# bifurcating axon on a single-point soma
1 1 0.0 0.0 0.0 2.0 -1
2 2 0.0 2.0 0.0 1.0  1
3 2 0.0 4.0 0.0 0.9  2
4 2 -1.0 6.0 0.0 0.8 3
5 2 1.0 6.0 0.0 0.8  3
`

const swollenSWC = `1 1 0.0 0.0 0.0 2.0 -1
2 2 0.0 2.0 0.0 0.5  1
3 2 0.0 4.0 0.0 1.5  2
`

func writeSWC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cell.swc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	var stdout bytes.Buffer
	c.Stdout = &stdout

	root := c.RootCommand()
	root.SilenceErrors = true
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestRootCommandWiring(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	for _, name := range []string{"check", "view", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}

func TestCheckCommandPasses(t *testing.T) {
	out, err := execute(t, "check", writeSWC(t, goodSWC))
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "checks passed") {
		t.Errorf("output missing pass summary:\n%s", out)
	}
}

func TestCheckCommandFails(t *testing.T) {
	out, err := execute(t, "check", writeSWC(t, swollenSWC))
	if err == nil {
		t.Fatal("check passed a growing radius")
	}
	if !apperrors.Is(err, apperrors.ErrCodeTopology) {
		t.Errorf("error code = %q, want TOPOLOGY_ERROR", apperrors.GetCode(err))
	}
	if !strings.Contains(out, "monotonic-radius") {
		t.Errorf("output missing failing check:\n%s", out)
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, err := execute(t, "check", filepath.Join(t.TempDir(), "absent.swc"))
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestCheckCommandConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "checks.toml")
	cfg := "[monotonic]\nenabled = false\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	// With monotonicity disabled the swollen file passes.
	if _, err := execute(t, "check", writeSWC(t, swollenSWC), "--config", cfgPath); err != nil {
		t.Errorf("check with disabled validator failed: %v", err)
	}
}

func TestCheckCommandBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "checks.toml")
	if err := os.WriteFile(cfgPath, []byte("[flatness]\nmethod = \"bogus\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "check", writeSWC(t, goodSWC), "--config", cfgPath)
	if !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestViewCommandStdout(t *testing.T) {
	out, err := execute(t, "view", writeSWC(t, goodSWC))
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if !strings.Contains(out, "digraph morphology") || !strings.Contains(out, "soma -> s0;") {
		t.Errorf("output is not the expected DOT:\n%s", out)
	}
}

func TestViewCommandToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "topology.dot")
	if _, err := execute(t, "view", writeSWC(t, goodSWC), "-o", outPath); err != nil {
		t.Fatalf("view failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "digraph morphology") {
		t.Errorf("written file is not DOT:\n%s", data)
	}
}

func TestCheckCommandMalformedFile(t *testing.T) {
	_, err := execute(t, "check", writeSWC(t, "1 1 0 0 0\n"))
	if !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

package swc_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arborlab/morpho/pkg/morph"
	"github.com/arborlab/morpho/pkg/swc"
)

const sample = `# A bifurcating axon on a single-point soma.
# id type x y z r parent

1 1 0.0 0.0 0.0 2.0 -1
2 2 0.0 2.0 0.0 1.0  1
3 2 0.0 4.0 0.0 0.9  2
4 2 -1.0 6.0 0.0 0.8 3
5 2 1.0 6.0 0.0 0.8  3
`

func TestRead(t *testing.T) {
	samples, err := swc.Read(strings.NewReader(sample), swc.Options{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(samples) != 5 {
		t.Fatalf("samples = %d, want 5", len(samples))
	}

	soma := samples[0]
	if soma.ID != 1 || soma.Type != morph.TypeSoma || soma.R != 2.0 || soma.ParentID != morph.NoParentID {
		t.Errorf("soma sample = %+v", soma)
	}
	branch := samples[3]
	if branch.Type != morph.TypeAxon || branch.X != -1.0 || branch.Y != 6.0 || branch.ParentID != 3 {
		t.Errorf("branch sample = %+v", branch)
	}
}

func TestReadTagMapping(t *testing.T) {
	samples, err := swc.Read(strings.NewReader("1 7 0 0 0 1 -1\n"), swc.Options{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if samples[0].Type != morph.TypeCustom {
		t.Errorf("tag 7 mapped to %v, want custom", samples[0].Type)
	}
}

func TestReadSyntaxErrors(t *testing.T) {
	for name, line := range map[string]string{
		"too few fields":  "1 1 0 0 0 1",
		"too many fields": "1 1 0 0 0 1 -1 9",
		"bad id":          "x 1 0 0 0 1 -1",
		"bad coordinate":  "1 1 0 zero 0 1 -1",
		"bad parent":      "1 1 0 0 0 1 none",
	} {
		_, err := swc.Read(strings.NewReader(line+"\n"), swc.Options{})
		if !errors.Is(err, swc.ErrSyntax) {
			t.Errorf("%s: Read() = %v, want ErrSyntax", name, err)
		}
		if err != nil && !strings.Contains(err.Error(), "line 1") {
			t.Errorf("%s: error %q does not carry the line number", name, err)
		}
	}
}

func TestReadNegativeRadius(t *testing.T) {
	_, err := swc.Read(strings.NewReader("1 1 0 0 0 -0.5 -1\n"), swc.Options{})
	if !errors.Is(err, swc.ErrNegativeRadius) {
		t.Fatalf("Read() = %v, want ErrNegativeRadius", err)
	}
}

func TestReadStrictIDs(t *testing.T) {
	const outOfOrder = "1 1 0 0 0 2 -1\n3 2 0 2 0 1 1\n2 2 0 4 0 1 3\n"

	if _, err := swc.Read(strings.NewReader(outOfOrder), swc.Options{}); err != nil {
		t.Errorf("lenient Read() error = %v", err)
	}
	_, err := swc.Read(strings.NewReader(outOfOrder), swc.Options{StrictIDs: true})
	if !errors.Is(err, swc.ErrIDOrder) {
		t.Errorf("strict Read() = %v, want ErrIDOrder", err)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cell.swc")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	samples, err := swc.ReadFile(path, swc.Options{})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(samples) != 5 {
		t.Errorf("samples = %d, want 5", len(samples))
	}

	if _, err := swc.ReadFile(filepath.Join(t.TempDir(), "absent.swc"), swc.Options{}); !os.IsNotExist(err) {
		t.Errorf("ReadFile(absent) = %v, want a not-exist error", err)
	}
}

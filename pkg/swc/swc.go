// Package swc reads the SWC text format into the flat sample records
// consumed by [morph.Build]. One line per digitized point, seven
// whitespace-separated fields: id, structure tag, x, y, z, radius, parent
// id. Lines starting with '#' and blank lines are skipped.
//
// The reader stops at the flat record: grouping samples into sections and
// trees is reconstruction, not parsing, and lives in the morph package.
package swc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arborlab/morpho/pkg/morph"
)

var (
	// ErrSyntax is returned for lines that are not seven numeric fields.
	ErrSyntax = errors.New("malformed swc line")

	// ErrIDOrder is returned with [Options.StrictIDs] when sample ids are
	// not strictly increasing in file order.
	ErrIDOrder = errors.New("sample ids not in ascending order")

	// ErrNegativeRadius is returned when a sample carries a radius below
	// zero.
	ErrNegativeRadius = errors.New("negative radius")
)

// Options configures reading.
type Options struct {
	// StrictIDs enforces strictly increasing sample ids, for pipelines
	// feeding formats that require monotonic ids downstream.
	StrictIDs bool
}

// ReadFile reads the SWC file at path.
func ReadFile(path string, opts Options) ([]morph.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Read parses SWC content into samples in file order.
func Read(r io.Reader, opts Options) ([]morph.Sample, error) {
	var samples []morph.Sample
	lastID := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if opts.StrictIDs && len(samples) > 0 && s.ID <= lastID {
			return nil, fmt.Errorf("line %d: %w: %d after %d", lineNo, ErrIDOrder, s.ID, lastID)
		}
		lastID = s.ID
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func parseLine(line string) (morph.Sample, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return morph.Sample{}, fmt.Errorf("%w: %d fields, want 7", ErrSyntax, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return morph.Sample{}, fmt.Errorf("%w: id %q", ErrSyntax, fields[0])
	}
	tag, err := strconv.Atoi(fields[1])
	if err != nil {
		return morph.Sample{}, fmt.Errorf("%w: type %q", ErrSyntax, fields[1])
	}
	var coords [4]float64
	for i, name := range []string{"x", "y", "z", "radius"} {
		coords[i], err = strconv.ParseFloat(fields[2+i], 64)
		if err != nil {
			return morph.Sample{}, fmt.Errorf("%w: %s %q", ErrSyntax, name, fields[2+i])
		}
	}
	parent, err := strconv.Atoi(fields[6])
	if err != nil {
		return morph.Sample{}, fmt.Errorf("%w: parent %q", ErrSyntax, fields[6])
	}
	if coords[3] < 0 {
		return morph.Sample{}, fmt.Errorf("%w: %g", ErrNegativeRadius, coords[3])
	}

	return morph.Sample{
		ID:       id,
		Type:     morph.NeuriteTypeFromTag(tag),
		X:        coords[0],
		Y:        coords[1],
		Z:        coords[2],
		R:        coords[3],
		ParentID: parent,
	}, nil
}

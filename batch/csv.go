// SPDX-License-Identifier: MIT

package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/katalvlaran/roughsurf/surface"
)

// RowPolicy selects which data rows ReadParameters returns.
type RowPolicy int

const (
	// AllRows returns one parameter set per data row.
	AllRows RowPolicy = iota
	// FirstRowOnly returns only the first data row and ignores the rest.
	FirstRowOnly
)

// String implements fmt.Stringer.
func (p RowPolicy) String() string {
	switch p {
	case AllRows:
		return "all"
	case FirstRowOnly:
		return "first"
	default:
		return fmt.Sprintf("RowPolicy(%d)", int(p))
	}
}

// ParseRowPolicy maps "all" and "first" (any case) to a RowPolicy.
func ParseRowPolicy(s string) (RowPolicy, error) {
	switch cases.Fold().String(strings.TrimSpace(s)) {
	case "all", "":
		return AllRows, nil
	case "first":
		return FirstRowOnly, nil
	default:
		return AllRows, fmt.Errorf("row policy %q: %w", s, ErrBadRecord)
	}
}

// DefaultN is the grid size used when the CSV has no N column.
const DefaultN = 128

// ReadOption customizes ReadParameters.
type ReadOption func(*readConfig)

type readConfig struct {
	defaultN int
}

// WithDefaultN sets the grid size for CSV files without an N column.
// Panics when n < surface.MinN.
func WithDefaultN(n int) ReadOption {
	if n < surface.MinN {
		panic(fmt.Sprintf("batch: WithDefaultN(%d)", n))
	}
	return func(c *readConfig) { c.defaultN = n }
}

// column keys after case folding.
var (
	colN    = fold("N")
	colRL   = fold("rL")
	colArea = fold("area")
	colH    = fold("h")
	colRMS  = fold("rms")
	colCLX  = fold("clx")
	colCLY  = fold("cly")
)

func fold(s string) string { return cases.Fold().String(strings.TrimSpace(s)) }

// ReadParameters parses a header-labeled CSV stream into parameter sets.
//
// A bad data row does not stop the read: the valid rows are returned together
// with an error joining one *RowError per rejected row (see RowErrors).
// Under FirstRowOnly only the first data row is considered.
//
// Errors:
//   - ErrEmptyInput when there is no header or no data row.
//   - ErrMissingColumn when rL/area, h/rms or clx is absent.
//   - *RowError wrapping ErrBadRecord for unparsable cells; for out-of-domain
//     values surface.ErrInvalidParameter is wrapped too.
func ReadParameters(r io.Reader, policy RowPolicy, opts ...ReadOption) ([]surface.Parameters, error) {
	cfg := readConfig{defaultN: DefaultN}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("no header: %w", ErrEmptyInput)
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w: %w", ErrBadRecord, err)
	}
	idx := make(map[string]int, len(head))
	for k, name := range head {
		idx[fold(name)] = k
	}

	lookup := func(keys ...string) (int, bool) {
		for _, key := range keys {
			if k, ok := idx[key]; ok {
				return k, true
			}
		}
		return 0, false
	}
	iRL, hasRL := lookup(colRL)
	iArea, hasArea := lookup(colArea)
	iH, hasH := lookup(colH, colRMS)
	iCLX, hasCLX := lookup(colCLX)
	iCLY, aniso := lookup(colCLY)
	iN, hasN := lookup(colN)
	switch {
	case !hasRL && !hasArea:
		return nil, fmt.Errorf("rL or area: %w", ErrMissingColumn)
	case !hasH:
		return nil, fmt.Errorf("h or rms: %w", ErrMissingColumn)
	case !hasCLX:
		return nil, fmt.Errorf("clx: %w", ErrMissingColumn)
	}
	cols := columns{n: iN, rL: iRL, area: iArea, h: iH, clx: iCLX, cly: iCLY, hasN: hasN, hasRL: hasRL, aniso: aniso}

	var (
		out     []surface.Parameters
		rowErrs []error
		seen    int
	)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if err != nil && !errors.As(err, &perr) {
			return nil, fmt.Errorf("row %d: %w: %w", row, ErrBadRecord, err)
		}
		if err == nil && len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		seen++

		var p surface.Parameters
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBadRecord, err)
		} else {
			p, err = cols.parse(rec, cfg.defaultN)
		}
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Row: row, Err: err})
		} else {
			out = append(out, p)
		}
		if policy == FirstRowOnly {
			break
		}
	}
	if seen == 0 {
		return nil, fmt.Errorf("no data rows: %w", ErrEmptyInput)
	}

	return out, errors.Join(rowErrs...)
}

// columns holds the header positions of the recognized columns.
type columns struct {
	n, rL, area, h, clx, cly int
	hasN, hasRL, aniso       bool
}

// parse converts one data record into validated parameters.
func (c columns) parse(rec []string, defaultN int) (surface.Parameters, error) {
	cell := func(k int, name string) (float64, error) {
		if k >= len(rec) {
			return 0, fmt.Errorf("%s: missing cell: %w", name, ErrBadRecord)
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(rec[k]), 64)
		if perr != nil {
			return 0, fmt.Errorf("%s: %w: %w", name, ErrBadRecord, perr)
		}
		return v, nil
	}

	var (
		p   surface.Parameters
		err error
	)
	p.N = defaultN
	if c.hasN {
		nf, err := cell(c.n, "N")
		if err != nil {
			return p, err
		}
		if nf != math.Trunc(nf) || nf > math.MaxInt32 || nf < math.MinInt32 {
			return p, fmt.Errorf("N=%v is not an integer: %w", nf, ErrBadRecord)
		}
		p.N = int(nf)
	}
	if c.hasRL {
		if p.RL, err = cell(c.rL, "rL"); err != nil {
			return p, err
		}
	} else {
		area, err := cell(c.area, "area")
		if err != nil {
			return p, err
		}
		p.RL = math.Sqrt(area)
	}
	if p.H, err = cell(c.h, "h"); err != nil {
		return p, err
	}
	if p.CLX, err = cell(c.clx, "clx"); err != nil {
		return p, err
	}
	if c.aniso {
		p.Anisotropic = true
		if p.CLY, err = cell(c.cly, "cly"); err != nil {
			return p, err
		}
	}
	if err = p.Validate(); err != nil {
		return p, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	return p, nil
}

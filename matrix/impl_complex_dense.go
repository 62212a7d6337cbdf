// SPDX-License-Identifier: MIT

// Package matrix - ComplexDense storage (row-major) for spectral work.
//
// Purpose:
//   - Hold the operands handed to and returned from 2D Fourier transforms.
//   - Mirror Dense: row-major flat buffer, bounds-checked accessors, fixed loop orders.
//   - Bridge to complex128 rows for third-party FFT kernels (RowBuiltin/SetRowBuiltin).
//
// Complexity quicksheet:
//   - NewComplexDense/LiftReal/Clone/ComplexHadamard/RealPart: O(r*c); At/Set: O(1); Row/Col: O(len).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxCAt      = "At"
	ctxCSet     = "Set"
	ctxCRow     = "Row"
	ctxCSetRow  = "SetRow"
	ctxCCol     = "Col"
	ctxCSetCol  = "SetCol"
	opCHadamard = "ComplexHadamard"
	opCLift     = "LiftReal"
	opCScale    = "ComplexScale"
)

// complexErrorf wraps err with the ComplexDense method tag and coordinates.
func complexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ComplexDense.%s(%d,%d): %w", method, row, col, err)
}

// ComplexDense is a row-major r×c matrix of Complex values.
type ComplexDense struct {
	r, c int       // dimensions (>0)
	data []Complex // len == r*c, offset = i*c + j
}

// NewComplexDense allocates an r×c zero complex matrix.
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
func NewComplexDense(rows, cols int) (*ComplexDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &ComplexDense{r: rows, c: cols, data: make([]Complex, rows*cols)}, nil
}

// NewComplexDenseFrom copies a rectangular [][]Complex.
// Errors: ErrInvalidDimensions on empty input, ErrDimensionMismatch on ragged rows.
func NewComplexDenseFrom(rows [][]Complex) (*ComplexDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	out, _ := NewComplexDense(r, c) // shape validated above
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, complexErrorf(ctxCSetRow, i, len(rows[i]), ErrDimensionMismatch)
		}
		copy(out.data[i*c:(i+1)*c], rows[i])
	}

	return out, nil
}

// LiftReal builds a ComplexDense with Re = m[i,j] and Im = 0.
// MAIN DESCRIPTION:
//   - Entry point of the convolution theorem: real operands become complex inputs.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func LiftReal(m Matrix) (*ComplexDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCLift, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewComplexDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opCLift, err)
	}

	// Dense fast-path: one flat pass.
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = Complex{Re: v}
		}
		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opCLift, err)
			}
			out.data[i*c+j] = Complex{Re: v}
		}
	}

	return out, nil
}

// Rows returns the row count.
func (m *ComplexDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *ComplexDense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *ComplexDense) Shape() (rows, cols int) { return m.r, m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *ComplexDense) At(row, col int) (Complex, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return Complex{}, complexErrorf(ctxCAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *ComplexDense) Set(row, col int, v Complex) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return complexErrorf(ctxCSet, row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns an independent deep copy.
func (m *ComplexDense) Clone() *ComplexDense {
	cp := make([]Complex, len(m.data))
	copy(cp, m.data)

	return &ComplexDense{r: m.r, c: m.c, data: cp}
}

// Row copies row i into dst and returns dst (reallocated when len(dst) != Cols()).
func (m *ComplexDense) Row(i int, dst []Complex) ([]Complex, error) {
	if i < 0 || i >= m.r {
		return nil, complexErrorf(ctxCRow, i, 0, ErrOutOfRange)
	}
	if len(dst) != m.c {
		dst = make([]Complex, m.c)
	}
	copy(dst, m.data[i*m.c:(i+1)*m.c])

	return dst, nil
}

// SetRow overwrites row i with src (len(src) must equal Cols()).
func (m *ComplexDense) SetRow(i int, src []Complex) error {
	if i < 0 || i >= m.r {
		return complexErrorf(ctxCSetRow, i, 0, ErrOutOfRange)
	}
	if len(src) != m.c {
		return complexErrorf(ctxCSetRow, i, len(src), ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], src)

	return nil
}

// Col gathers column j into dst (strided read) and returns dst.
func (m *ComplexDense) Col(j int, dst []Complex) ([]Complex, error) {
	if j < 0 || j >= m.c {
		return nil, complexErrorf(ctxCCol, 0, j, ErrOutOfRange)
	}
	if len(dst) != m.r {
		dst = make([]Complex, m.r)
	}
	for i := 0; i < m.r; i++ {
		dst[i] = m.data[i*m.c+j]
	}

	return dst, nil
}

// SetCol scatters src into column j (len(src) must equal Rows()).
func (m *ComplexDense) SetCol(j int, src []Complex) error {
	if j < 0 || j >= m.c {
		return complexErrorf(ctxCSetCol, 0, j, ErrOutOfRange)
	}
	if len(src) != m.r {
		return complexErrorf(ctxCSetCol, len(src), j, ErrDimensionMismatch)
	}
	for i, z := range src {
		m.data[i*m.c+j] = z
	}

	return nil
}

// RowBuiltin copies row i into dst as complex128 values and returns dst.
// dst is reallocated when its length differs from Cols().
func (m *ComplexDense) RowBuiltin(i int, dst []complex128) ([]complex128, error) {
	if i < 0 || i >= m.r {
		return nil, complexErrorf(ctxCRow, i, 0, ErrOutOfRange)
	}
	if len(dst) != m.c {
		dst = make([]complex128, m.c)
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		dst[j] = m.data[base+j].Builtin()
	}

	return dst, nil
}

// SetRowBuiltin overwrites row i from complex128 values.
func (m *ComplexDense) SetRowBuiltin(i int, src []complex128) error {
	if i < 0 || i >= m.r {
		return complexErrorf(ctxCSetRow, i, 0, ErrOutOfRange)
	}
	if len(src) != m.c {
		return complexErrorf(ctxCSetRow, i, len(src), ErrDimensionMismatch)
	}
	base := i * m.c
	for j, z := range src {
		m.data[base+j] = FromBuiltin(z)
	}

	return nil
}

// ToBuiltin materializes the matrix as [][]complex128.
func (m *ComplexDense) ToBuiltin() [][]complex128 {
	out := make([][]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i], _ = m.RowBuiltin(i, nil) // i is in range
	}

	return out
}

// ComplexFromBuiltin ingests [][]complex128 (e.g., a library FFT result).
// Errors: ErrInvalidDimensions on empty input, ErrDimensionMismatch on ragged rows.
func ComplexFromBuiltin(rows [][]complex128) (*ComplexDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	out, _ := NewComplexDense(len(rows), len(rows[0]))
	for i := range rows {
		if err := out.SetRowBuiltin(i, rows[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// RealPart returns a new Dense holding Re of every cell.
// The finite-only policy is applied; a NaN/Inf real part fails with ErrNaNInf.
func (m *ComplexDense) RealPart() (*Dense, error) {
	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for idx, z := range m.data {
		if isNonFinite(z.Re) {
			return nil, denseErrorf(ctxSet, idx/m.c, idx%m.c, ErrNaNInf)
		}
		out.data[idx] = z.Re
	}

	return out, nil
}

// MaxAbsImag scans for the largest |Im| and its position (row-major first hit).
// A NaN imaginary part is reported immediately as +Inf at its position so
// threshold checks fail closed.
func (m *ComplexDense) MaxAbsImag() (maxAbs float64, row, col int) {
	for idx, z := range m.data {
		a := math.Abs(z.Im)
		if math.IsNaN(a) {
			return math.Inf(1), idx / m.c, idx % m.c
		}
		if a > maxAbs {
			maxAbs, row, col = a, idx/m.c, idx%m.c
		}
	}

	return maxAbs, row, col
}

// Scale returns α·m as a new matrix.
func (m *ComplexDense) Scale(alpha float64) (*ComplexDense, error) {
	if m == nil {
		return nil, matrixErrorf(opCScale, ErrNilMatrix)
	}
	out := &ComplexDense{r: m.r, c: m.c, data: make([]Complex, len(m.data))}
	for idx, z := range m.data {
		out.data[idx] = z.Scale(alpha)
	}

	return out, nil
}

// ComplexHadamard computes the element-wise product a ⊙ b.
// MAIN DESCRIPTION:
//   - Frequency-domain multiplication step of the convolution theorem.
//
// Errors:
//   - ErrNilMatrix when a or b is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Flat 0..n-1 loop.
func ComplexHadamard(a, b *ComplexDense) (*ComplexDense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opCHadamard, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opCHadamard, ErrDimensionMismatch)
	}
	out := &ComplexDense{r: a.r, c: a.c, data: make([]Complex, len(a.data))}
	for idx := range a.data {
		out.data[idx] = a.data[idx].Mul(b.data[idx])
	}

	return out, nil
}

// ComplexAllClose reports whether |a-b| ≤ atol per cell (modulus of the difference).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf for a non-finite atol.
func ComplexAllClose(a, b *ComplexDense, atol float64) (bool, error) {
	if isNonFinite(atol) {
		return false, matrixErrorf("ComplexAllClose", ErrNaNInf)
	}
	if a == nil || b == nil {
		return false, matrixErrorf("ComplexAllClose", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf("ComplexAllClose", ErrDimensionMismatch)
	}
	atol = math.Abs(atol)
	for idx := range a.data {
		if a.data[idx].Sub(b.data[idx]).Abs() > atol {
			return false, nil
		}
	}

	return true, nil
}

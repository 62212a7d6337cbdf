// SPDX-License-Identifier: MIT

package spectral

import "github.com/katalvlaran/roughsurf/matrix"

// Direct evaluates the DFT definition along rows then columns.
// Any size is accepted. Time O(N·M·(N+M)), Space O(N·M + N + M).
type Direct struct{}

// Name implements Transform.
func (Direct) Name() string { return NameDirect }

// Forward implements Transform.
func (Direct) Forward(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opForward, x); err != nil {
		return nil, err
	}
	r, c := x.Shape()

	return separable(x, newDFTPlan(c, forward).apply, newDFTPlan(r, forward).apply), nil
}

// Inverse implements Transform.
func (Direct) Inverse(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opInverse, x); err != nil {
		return nil, err
	}
	r, c := x.Shape()

	return inverseScale(separable(x, newDFTPlan(c, inverse).apply, newDFTPlan(r, inverse).apply))
}

// dftPlan is a direct 1D DFT of a fixed length and direction.
// The twiddle index k·m is reduced mod n so a single table of n roots serves
// every output bin.
type dftPlan struct {
	n       int
	tw      []matrix.Complex
	scratch []matrix.Complex
}

func newDFTPlan(n int, dir direction) *dftPlan {
	return &dftPlan{n: n, tw: twiddles(n, dir), scratch: make([]matrix.Complex, n)}
}

// apply transforms buf in place (len(buf) == p.n).
func (p *dftPlan) apply(buf []matrix.Complex) {
	var k, m int
	var acc matrix.Complex
	for k = 0; k < p.n; k++ {
		acc = matrix.Complex{}
		for m = 0; m < p.n; m++ {
			acc = acc.Add(buf[m].Mul(p.tw[(k*m)%p.n]))
		}
		p.scratch[k] = acc
	}
	copy(buf, p.scratch)
}

// SPDX-License-Identifier: MIT

package spectral

import "github.com/katalvlaran/roughsurf/matrix"

// Radix2 is an iterative in-place Cooley–Tukey FFT applied per axis.
// Axes whose length is not a power of two use the direct kernel instead, so
// every shape is accepted. Time O(N·M·log(N·M)) for power-of-two shapes.
type Radix2 struct{}

// Name implements Transform.
func (Radix2) Name() string { return NameRadix2 }

// Forward implements Transform.
func (Radix2) Forward(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opForward, x); err != nil {
		return nil, err
	}
	r, c := x.Shape()

	return separable(x, lineKernel(c, forward), lineKernel(r, forward)), nil
}

// Inverse implements Transform.
func (Radix2) Inverse(x *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := validateInput(opInverse, x); err != nil {
		return nil, err
	}
	r, c := x.Shape()

	return inverseScale(separable(x, lineKernel(c, inverse), lineKernel(r, inverse)))
}

// isPowerOfTwo reports n == 2^k for some k ≥ 0.
func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// lineKernel picks the radix-2 butterfly or the direct fallback for length n.
func lineKernel(n int, dir direction) lineFunc {
	if !isPowerOfTwo(n) {
		return newDFTPlan(n, dir).apply
	}
	// Roots for the largest stage; stage of size s uses every (n/s)-th root.
	tw := twiddles(n, dir)

	return func(buf []matrix.Complex) { butterfly(buf, tw) }
}

// butterfly runs the bit-reversal permutation followed by log2(n) stages.
func butterfly(buf []matrix.Complex, tw []matrix.Complex) {
	n := len(buf)

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	var start, k, half, stride int
	var u, v matrix.Complex
	for size := 2; size <= n; size <<= 1 {
		half = size >> 1
		stride = n / size
		for start = 0; start < n; start += size {
			for k = 0; k < half; k++ {
				u = buf[start+k]
				v = buf[start+k+half].Mul(tw[k*stride])
				buf[start+k] = u.Add(v)
				buf[start+k+half] = u.Sub(v)
			}
		}
	}
}

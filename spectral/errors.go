// SPDX-License-Identifier: MIT

package spectral

import "errors"

var (
	// ErrNumericalInstability is returned when the inverse transform of a
	// frequency-domain product leaves an imaginary residual at or above the
	// configured tolerance in any cell.
	ErrNumericalInstability = errors.New("spectral: residual imaginary component exceeds tolerance")

	// ErrUnknownTransform is returned by ByName for an unrecognized backend name.
	ErrUnknownTransform = errors.New("spectral: unknown transform")
)

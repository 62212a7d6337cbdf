// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrMalformedHeader indicates a token line whose header is not a sequence
	// of known key:value pairs with rms, clx, cly and N present.
	ErrMalformedHeader = errors.New("codec: malformed header")

	// ErrSizeMismatch indicates a height count different from N².
	ErrSizeMismatch = errors.New("codec: height count does not match N*N")

	// ErrBadValue indicates a height that is not a finite number.
	ErrBadValue = errors.New("codec: bad height value")
)

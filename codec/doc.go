// SPDX-License-Identifier: MIT

// Package codec serializes height fields as text.
//
// Token layout, one surface per line:
//
//	rms:<H>:clx:<clx>:cly:<cly>:N:<N>,z00,z01,...,z(N-1)(N-1)
//
// Heights are row-major. cly is written as 0 for isotropic surfaces, and a
// zero cly marks a line as isotropic when read back. WithSideLengthHeader
// appends a trailing ":rL:<rL>" pair. ReadTokens accepts both forms; without
// rL it falls back to WithSideLength or to a unit grid step, rL = N-1.
//
// Human layout, one block per surface:
//
//	rms:<H> clx:<clx> cly:<cly> N:<N> [rL:<rL>]
//	z00,z01,...
//	...
//	<blank line>
//
// Numbers use strconv.FormatFloat(v, 'g', -1, 64), so a token line read back
// reproduces every height bit for bit.
package codec

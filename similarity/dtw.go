// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"
)

// DTW computes the Dynamic Time Warping distance between a and b.
// A nil opts means DefaultOptions().
//
// Errors:
//   - ErrEmptySequence if len(a)==0 or len(b)==0.
//   - ErrBadInput for Window < -1, a negative or NaN SlopePenalty, or an unknown MemoryMode.
//   - ErrPathNeedsMatrix when ReturnPath is set without FullMatrix.
//
// When the window makes the end cell unreachable the distance is +Inf.
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, fmt.Errorf("window=%d: %w", o.Window, ErrBadInput)
	}
	if !(o.SlopePenalty >= 0) {
		return 0, nil, fmt.Errorf("slope penalty=%v: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	window := math.MaxInt32
	if o.Window >= 0 {
		window = o.Window
	}

	switch o.MemoryMode {
	case FullMatrix:
		dp := fullMatrix(a, b, window, o.SlopePenalty)
		if o.ReturnPath && !math.IsInf(dp[n][m], 1) {
			path = backtrack(dp, o.SlopePenalty)
		}
		return dp[n][m], path, nil
	case TwoRows:
		return twoRows(a, b, window, o.SlopePenalty), nil, nil
	case NoMemory:
		return oneRow(a, b, window, o.SlopePenalty), nil, nil
	default:
		return 0, nil, fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadInput)
	}
}

// outside reports whether cell (i,j) (1-based) lies outside the band.
func outside(i, j, window int) bool {
	return window < math.MaxInt32 && abs(i-j) > window
}

func fullMatrix(a, b []float64, window int, penalty float64) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, window) {
				dp[i][j] = inf
				continue
			}
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + min3(dp[i-1][j]+penalty, dp[i][j-1]+penalty, dp[i-1][j-1])
		}
	}

	return dp
}

func twoRows(a, b []float64, window int, penalty float64) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, window) {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// oneRow keeps a single row; diag carries dp[i-1][j-1] across the sweep.
func oneRow(a, b []float64, window int, penalty float64) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	var diag, up float64
	for i := 1; i <= n; i++ {
		diag = row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up = row[j]
			if outside(i, j, window) {
				row[j] = inf
			} else {
				row[j] = math.Abs(a[i-1]-b[j-1]) + min3(up+penalty, row[j-1]+penalty, diag)
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks from (n,m) to (1,1) choosing the cheapest predecessor.
// Ties prefer the diagonal, then the row step, then the column step.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := []Coord{{I: i - 1, J: j - 1}}
	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			d, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
			switch {
			case d <= up && d <= left:
				i, j = i-1, j-1
			case up <= left:
				i--
			default:
				j--
			}
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

// FitColumns sizes table columns to fill a total width. cols holds the
// preferred widths; gap cells separate neighbouring columns. Leftover
// space goes to the first flexible column. When the preferred widths
// overflow, the flexible columns shrink largest-first, then the fixed
// ones, never below one cell.
func FitColumns(total, gap int, cols []int, flex ...int) []int {
	out := make([]int, len(cols))
	copy(out, cols)
	if total <= 0 || len(cols) == 0 {
		return out
	}

	avail := total - gap*(len(cols)-1)
	if avail <= 0 {
		for i := range out {
			if out[i] < 1 {
				out[i] = 1
			}
		}
		return out
	}

	sum := 0
	for _, w := range out {
		sum += w
	}

	if sum < avail {
		grow := avail - sum
		if len(flex) > 0 {
			out[flex[0]] += grow
		} else {
			out[len(out)-1] += grow
		}
		return out
	}

	for sum > avail {
		widest := -1
		for _, i := range flex {
			if out[i] > 1 && (widest == -1 || out[i] > out[widest]) {
				widest = i
			}
		}
		if widest == -1 {
			break
		}
		out[widest]--
		sum--
	}
	for i := 0; sum > avail && i < len(out); {
		if out[i] > 1 {
			out[i]--
			sum--
			continue
		}
		i++
	}
	return out
}

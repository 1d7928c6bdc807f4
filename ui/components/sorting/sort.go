// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package sorting orders table rows by one of their columns. The shelf
// table cycles title, author, year and length through these.
package sorting

import "sort"

type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// SortArrow is the header marker for the active sort column.
func SortArrow(order SortOrder) string {
	if order == Ascending {
		return "▲"
	}
	return "▼"
}

// SortStringField orders items in place by a string key. Stable, so rows
// that compare equal keep their previous order when the column changes.
func SortStringField[T any](items []T, ascending bool, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return key(items[i]) < key(items[j])
		}
		return key(items[j]) < key(items[i])
	})
}

// SortIntField orders items in place by an integer key.
func SortIntField[T any](items []T, ascending bool, key func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return key(items[i]) < key(items[j])
		}
		return key(items[j]) < key(items[i])
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package hash fingerprints scan results, so a poller can tell a shelf
// that changed from a rescan that found the same books.
package hash

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Compute returns a structural hash of v, stable across process runs.
func Compute(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

// Fmt renders a hash the way the logs print one.
func Fmt(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand is returned for a blank ':' prompt submit.
var ErrEmptyCommand = errors.New("empty command")

// ErrUnknownCommand reports an unrecognized verb. The text lands in the
// command bar, so it points the reader at :help.
func ErrUnknownCommand(input string) error {
	return fmt.Errorf("unknown command %q, :help lists the verbs", input)
}

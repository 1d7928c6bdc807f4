// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package haptics

import (
	"io"
	"os"
)

// Feedback is the tactile-feedback capability handed to screens. Screens
// never know what is behind it; a terminal has no motor, so the default
// implementation rings the bell.
type Feedback interface {
	// Buzz emits one short feedback pulse.
	Buzz()
}

// BellFeedback writes BEL to the terminal. Most emulators translate it to
// a visual or audible ping, which is as close to a buzz as a TTY gets.
type BellFeedback struct {
	Out io.Writer
}

func NewBell() *BellFeedback {
	return &BellFeedback{Out: os.Stderr}
}

func (b *BellFeedback) Buzz() {
	if b.Out == nil {
		return
	}
	_, _ = b.Out.Write([]byte{'\a'})
}

// NopFeedback swallows every pulse. Used when ui.haptics is off and in
// tests.
type NopFeedback struct{}

func (NopFeedback) Buzz() {}

// FromConfig picks the feedback implementation for the ui.haptics setting.
func FromConfig(enabled bool) Feedback {
	if enabled {
		return NewBell()
	}
	return NopFeedback{}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package nav

import (
	"folio/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

// Factory builds the screen for a destination. The route carries the typed
// parameters (the page number); payload carries anything else the caller
// threads through (the selected book, the deep link).
type Factory func(width, height int, r Route, payload any) (view.View, tea.Cmd)

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// Destination names, matched against View.Name() by the app's key
// handling and asserted on in tests.
const (
	NameStart   = "start"
	NameCredits = "credits"
	NameBook    = "book"
	NamePage    = "page"
	NameHelp    = "help"
	NameLoading = "loading"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package startview

import (
	foliolog "folio/utils/log"
	"folio/views/view"
)

const ViewName = view.NameStart

func l() *foliolog.FolioLogger {
	return foliolog.L().With("view", ViewName)
}

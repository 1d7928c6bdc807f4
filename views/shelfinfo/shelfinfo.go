// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shelfinfoview

import foliolog "folio/utils/log"

func l() *foliolog.FolioLogger {
	return foliolog.L().With("view", "shelfinfo")
}

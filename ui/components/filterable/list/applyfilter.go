package filterlist

// ApplyFilter recomputes Filtered from Items and the current query, then
// clamps the cursor back into the filtered rows.
func (f *FilterableList[T]) ApplyFilter() {
	if f.Query == "" || f.Rank == nil {
		f.Filtered = f.Items
	} else {
		f.Filtered = f.Rank(f.Items, f.Query)
	}
	f.moveCursor(0)
}

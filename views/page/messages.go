package pageview

import "time"

// ContentMsg delivers the text of one page, or why it could not be read.
type ContentMsg struct {
	Page int
	Text string
	Err  error
}

// toastTTL is how long boundary notices stay in the footer.
const toastTTL = 2 * time.Second

// toastExpiredMsg repaints the footer once a toast deadline passes.
type toastExpiredMsg struct{}

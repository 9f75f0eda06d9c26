package quiz

// styleTickMsg applies deferred drag styling one frame after a mouse press.
type styleTickMsg struct{}

// submitMsg is sent by the submit button.
type submitMsg struct{}

// noticeDueMsg is sent once the post-submit notice delay has elapsed.
type noticeDueMsg struct {
	roundID string
}

// shareDoneMsg carries the outcome of a share attempt.
type shareDoneMsg struct {
	err error
}

// toastExpiredMsg clears a transient notice unless a newer one replaced it.
type toastExpiredMsg struct {
	seq int
}

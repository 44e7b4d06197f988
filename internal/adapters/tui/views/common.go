package views

// Timing and input thresholds for the browsing flows.
const (
	// searchQuietPeriod is how long input must settle before a search fires.
	searchQuietPeriod = 300 // milliseconds

	// minQueryLength is the smallest trimmed query worth sending.
	minQueryLength = 2

	// thumbResetDelay is how long a finished thumbnail control shows its
	// outcome before re-arming.
	thumbResetDelay = 3000 // milliseconds
)

// ViewState contains common state shared by view models.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions.
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view.
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message.
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

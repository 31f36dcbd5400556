package domain

// ViewEventType names a user interaction applied to a view.
type ViewEventType string

const (
	ViewEventOpened          ViewEventType = "opened"
	ViewEventMenuToggled     ViewEventType = "menu_toggled"
	ViewEventNavActivated    ViewEventType = "nav_activated"
	ViewEventEmailChanged    ViewEventType = "email_changed"
	ViewEventSignupSubmitted ViewEventType = "signup_submitted"
	ViewEventSignupIgnored   ViewEventType = "signup_ignored"
)

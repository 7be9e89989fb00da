package gcalendar

import "time"

// CreateEventRequest describes an all-day reminder event for a task due
// date.
type CreateEventRequest struct {
	Summary     string
	Description string
	Date        time.Time // calendar date; the event is all-day
	CalendarID  string    // defaults to "primary"
}

// Event is the created calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     time.Time
}

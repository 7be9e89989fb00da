package gcalendar

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateFormat = "2006-01-02"

// Client wraps the Google Calendar API service for due-date reminders.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// SetCalendarID sets the calendar used when a request does not name one.
func (c *Client) SetCalendarID(id string) {
	c.calendarID = id
}

// NewClientFromCredentialsFile creates a Calendar client from a Service
// Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates an all-day event on the task's due date.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	day := req.Date.Format(dateFormat)
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: day},
		End:         &calendar.EventDateTime{Date: req.Date.AddDate(0, 0, 1).Format(dateFormat)},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = c.calendarID
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		Date:     req.Date,
	}, nil
}

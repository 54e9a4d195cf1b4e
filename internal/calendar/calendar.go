// Package calendar reads the studio's public Google Calendar.
package calendar

import (
	"context"
	"fmt"
	"time"
	"workshop-site/internal/cache"
	"workshop-site/internal/config"
	"workshop-site/internal/logger"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Entry is one occurrence on the calendar.
type Entry struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Link        string    `json:"link"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
}

// WindowYears is how far before and after now entries are listed.
const WindowYears = 1

// Client lists calendar entries, caching each listing for a configured TTL.
type Client struct {
	svc   *gcal.Service
	id    string
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time
	log   logger.Logger
}

// New creates a Client for cfg.ID. c may be nil to disable caching. Extra
// options are passed to the Calendar API client.
func New(ctx context.Context, cfg config.CalendarConfig, c *cache.Cache, ttl time.Duration, log logger.Logger, opts ...option.ClientOption) (*Client, error) {
	if cfg.APIKey != "" {
		opts = append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	}
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create calendar service: %w", err)
	}
	return &Client{svc: svc, id: cfg.ID, cache: c, ttl: ttl, now: time.Now, log: log}, nil
}

// Configured reports whether a calendar id has been set.
func (c *Client) Configured() bool {
	return c != nil && c.id != ""
}

// Entries lists single occurrences within WindowYears of now, ordered by start time.
func (c *Client) Entries(ctx context.Context) ([]Entry, error) {
	if !c.Configured() {
		return nil, nil
	}

	key := "calendar:" + c.id
	if c.cache != nil {
		var cached []Entry
		found, err := c.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			c.log.Error(err, "Failed to read calendar cache")
		} else if found {
			return cached, nil
		}
	}

	entries, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.SetJSON(ctx, key, entries, c.ttl); err != nil {
			c.log.Error(err, "Failed to cache calendar entries")
		}
	}
	return entries, nil
}

func (c *Client) fetch(ctx context.Context) ([]Entry, error) {
	now := c.now()
	call := c.svc.Events.List(c.id).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(now.AddDate(-WindowYears, 0, 0).Format(time.RFC3339)).
		TimeMax(now.AddDate(WindowYears, 0, 0).Format(time.RFC3339))

	var entries []Entry
	err := call.Pages(ctx, func(page *gcal.Events) error {
		for _, item := range page.Items {
			e, err := toEntry(item)
			if err != nil {
				c.log.Warn(fmt.Sprintf("Skipping calendar event %s: %v", item.Id, err))
				continue
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to list calendar events: %w", err)
	}
	return entries, nil
}

func toEntry(item *gcal.Event) (Entry, error) {
	e := Entry{
		Title:       item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Link:        item.HtmlLink,
	}
	var err error
	if e.Start, e.AllDay, err = eventTime(item.Start); err != nil {
		return Entry{}, err
	}
	if e.End, _, err = eventTime(item.End); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// eventTime reads a timed or all-day boundary. All-day events only carry a date.
func eventTime(t *gcal.EventDateTime) (time.Time, bool, error) {
	if t == nil {
		return time.Time{}, false, fmt.Errorf("missing event time")
	}
	if t.DateTime != "" {
		v, err := time.Parse(time.RFC3339, t.DateTime)
		return v, false, err
	}
	v, err := time.Parse("2006-01-02", t.Date)
	return v, true, err
}

package service

import (
	"context"
	"fmt"
	"html/template"
	"time"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/pricing"
	"workshop-site/internal/storage"

	"github.com/microcosm-cc/bluemonday"
)

// EventListing is an event with its terms resolved for one render.
type EventListing struct {
	*data.Event
	Offer pricing.Offer
	Embed template.HTML
}

// EventService manages events and resolves their promotional terms.
type EventService struct {
	*Editor[*data.Event]
	embeds *bluemonday.Policy
	now    func() time.Time
}

// NewEventService creates an EventService. uploader may be nil.
func NewEventService(repo Repository[*data.Event], uploader storage.Uploader, log logger.Logger) *EventService {
	return &EventService{
		Editor: NewEditor("Events", repo, log,
			WithValidation(validateEvent),
			WithUploader[*data.Event](uploader),
		),
		embeds: pricing.EmbedPolicy(),
		now:    time.Now,
	}
}

// Listings fetches the events and resolves each one's offer at the current time.
func (s *EventService) Listings(ctx context.Context, mobile bool) ([]EventListing, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	listings := make([]EventListing, 0, len(events))
	for _, e := range events {
		listings = append(listings, s.listing(e, now, mobile))
	}
	return listings, nil
}

// Listing returns a single event with its offer resolved.
func (s *EventService) Listing(ctx context.Context, id string, mobile bool) (*EventListing, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			l := s.listing(e, s.now(), mobile)
			return &l, nil
		}
	}
	return nil, fmt.Errorf("event %s: %w", id, data.ErrNotFound)
}

func (s *EventService) listing(e *data.Event, now time.Time, mobile bool) EventListing {
	offer := pricing.ForEvent(e, now)
	return EventListing{
		Event: e,
		Offer: offer,
		Embed: pricing.Embed(s.embeds, offer.EmbedCode, mobile),
	}
}

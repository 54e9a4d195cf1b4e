package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"workshop-site/internal/calendar"
	"workshop-site/internal/contact"
	"workshop-site/internal/logger"
	"workshop-site/internal/middleware"
	"workshop-site/internal/service"
	"workshop-site/internal/session"
)

// CalendarSource lists the entries shown on the calendar panel.
type CalendarSource interface {
	Configured() bool
	Entries(ctx context.Context) ([]calendar.Entry, error)
}

// ContactSender delivers contact form messages.
type ContactSender interface {
	Send(ctx context.Context, msg contact.Message, remoteIP string) error
}

// maxUploadSize bounds multipart form bodies.
const maxUploadSize = 32 << 20

// flashForError turns a failed operation into the notification shown to the operator.
func flashForError(ctx context.Context, sm session.Manager, log logger.Logger, err error) {
	var verr *service.ValidationError
	var perr *service.PersistenceError
	switch {
	case errors.As(err, &verr):
		session.SetFlash(ctx, sm, session.FlashError, "Please fix the following: "+verr.Error())
	case errors.As(err, &perr):
		log.Error(err, "Write to the content store failed")
		session.SetFlash(ctx, sm, session.FlashError, fmt.Sprintf("Could not %s %s. Please try again later.", perr.Op, perr.Collection))
	default:
		log.Error(err, "Request failed")
		session.SetFlash(ctx, sm, session.FlashError, "Something went wrong. Please try again later.")
	}
}

func notFound(err error) *middleware.AppError {
	return &middleware.AppError{Error: err, Message: "Page not found", Code: http.StatusNotFound}
}

func renderFailed(err error, page string) *middleware.AppError {
	return &middleware.AppError{Error: err, Message: "Failed to render " + page, Code: http.StatusInternalServerError}
}

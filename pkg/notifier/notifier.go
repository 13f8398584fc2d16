// Package notifier delivers best-effort organizer notifications. Delivery is
// asynchronous and at-most-once: the request path hands off and returns,
// failures are logged and never propagated back to the caller.
package notifier

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// Dispatcher is the interface consumed by the service layer.
type Dispatcher interface {
	RSVPCreated(organizerEmail, eventTitle, userName, status string)
	ReviewCreated(organizerEmail, eventTitle, userName string, rating int)
}

type EmailDispatcher struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

// NewEmailDispatcher builds a resend-backed dispatcher. With an empty API key
// it runs in log-only mode, which keeps local development working without
// credentials.
func NewEmailDispatcher(apiKey, from, fromName string, logger *zap.Logger) *EmailDispatcher {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &EmailDispatcher{
		client:   client,
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

func (d *EmailDispatcher) RSVPCreated(organizerEmail, eventTitle, userName, status string) {
	subject := fmt.Sprintf("New RSVP for your event: %s", eventTitle)
	body := fmt.Sprintf("%s has RSVP'd to your event %q with status: %s.", userName, eventTitle, status)
	d.dispatch(organizerEmail, subject, body)
}

func (d *EmailDispatcher) ReviewCreated(organizerEmail, eventTitle, userName string, rating int) {
	subject := fmt.Sprintf("New review for your event: %s", eventTitle)
	body := fmt.Sprintf("%s has reviewed your event %q with %d/5 stars.", userName, eventTitle, rating)
	d.dispatch(organizerEmail, subject, body)
}

func (d *EmailDispatcher) dispatch(to, subject, body string) {
	deliveryID := uuid.NewString()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("notification dispatch panicked",
					zap.String("delivery_id", deliveryID),
					zap.Any("panic", r),
				)
			}
		}()

		if d.client == nil {
			d.logger.Info("notification skipped, no email provider configured",
				zap.String("delivery_id", deliveryID),
				zap.String("to", to),
				zap.String("subject", subject),
			)
			return
		}

		params := &resend.SendEmailRequest{
			From:    d.fromName + " <" + d.from + ">",
			To:      []string{to},
			Subject: subject,
			Text:    body,
		}

		resp, err := d.client.Emails.Send(params)
		if err != nil {
			d.logger.Warn("notification delivery failed",
				zap.String("delivery_id", deliveryID),
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
			return
		}

		d.logger.Info("notification delivered",
			zap.String("delivery_id", deliveryID),
			zap.String("to", to),
			zap.String("provider_id", resp.Id),
		)
	}()
}

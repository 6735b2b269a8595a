package client

import (
	"context"

	"github.com/campuspulse/engage-go/internal/domain/event"
)

func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	err := c.get(ctx, "/events", nil, &events)
	return events, err
}

func (c *Client) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	var e event.Event
	if err := c.get(ctx, "/events/"+id, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// RegisterForEvent registers the current user. formSubmissionID links the
// registration to an earlier registration-form submission; pass "" when the
// event has no registration form.
func (c *Client) RegisterForEvent(ctx context.Context, eventID, formSubmissionID string) (*event.Registration, error) {
	input := event.RegisterInput{EventID: eventID, FormSubmissionID: formSubmissionID}
	var reg event.Registration
	if err := c.post(ctx, "/events/"+eventID+"/register", input, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

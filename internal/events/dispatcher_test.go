package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var seen []int64
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e.TicketID)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: 7}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(seen) != 1 || seen[0] != 7 {
		t.Errorf("seen = %v, want [7]", seen)
	}
}

func TestDispatcher_UnrelatedTypeNotInvoked(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	called := false
	d.Subscribe(EventTicketDeleted, func(context.Context, Event) error {
		called = true
		return nil
	})

	_ = d.Publish(context.Background(), Event{Type: EventComentarioCreated, TicketID: 1})
	if called {
		t.Error("handler for ticket_deleted invoked for comentario_created event")
	}
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	second := false
	d.Subscribe(EventTicketUpdated, func(context.Context, Event) error {
		return errors.New("first handler failed")
	})
	d.Subscribe(EventTicketUpdated, func(context.Context, Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketUpdated}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if !second {
		t.Error("second handler not invoked after first handler error")
	}
}

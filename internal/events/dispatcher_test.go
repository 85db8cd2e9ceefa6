package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherInvokesSubscribedHandlers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var seen []EventType
	d.Subscribe(EventTraineeEnrolled, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})
	d.Subscribe(EventTraineeEnrolled, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, e Event) error {
		t.Error("handler for unrelated event type invoked")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTraineeEnrolled}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("got %d handler invocations, want 2", len(seen))
	}
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	invoked := false
	d.Subscribe(EventTraineeDeleted, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventTraineeDeleted, func(context.Context, Event) error {
		invoked = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTraineeDeleted}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !invoked {
		t.Fatal("second handler not invoked after first failed")
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventEmployeeUpdated}); err != nil {
		t.Fatalf("publish with no subscribers: %v", err)
	}
}

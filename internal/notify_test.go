package internal

import "testing"

func TestHub_RepositoryEvents(t *testing.T) {
	hub := NewHub()
	var events []Event
	hub.Subscribe(func(e Event) { events = append(events, e) })

	repo := NewRepository(NewMemStore(), hub)
	repo.Upsert("A", GreetingMessages())
	repo.Delete("A")

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for i, e := range events {
		if e != EventSessions {
			t.Errorf("event %d = %v, want EventSessions", i, e)
		}
	}
}

func TestHub_TranscriptEvents(t *testing.T) {
	hub := NewHub()
	var events []Event
	hub.Subscribe(func(e Event) { events = append(events, e) })

	tr := NewTranscript(NewMemStore(), hub)
	tr.AppendUser("Hello")
	tr.NewChat()

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for i, e := range events {
		if e != EventTranscript {
			t.Errorf("event %d = %v, want EventTranscript", i, e)
		}
	}
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub := NewHub()
	var a, b int
	hub.Subscribe(func(Event) { a++ })
	hub.Subscribe(func(Event) { b++ })

	hub.publish(EventSessions)

	if a != 1 || b != 1 {
		t.Errorf("subscriber counts = %d, %d, want 1, 1", a, b)
	}
}

func TestHub_NilHubIsSafe(t *testing.T) {
	// Components constructed without a hub must not panic on publish.
	repo := NewRepository(NewMemStore(), nil)
	repo.Upsert("A", GreetingMessages())

	tr := NewTranscript(NewMemStore(), nil)
	tr.AppendUser("Hello")
}

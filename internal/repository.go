package internal

import "encoding/json"

// Repository is the ordered, title-keyed collection of saved sessions.
// Insertion order is preserved for display and never resorted by
// activity. Every mutation is written through to the store under
// KeyPreviousChats as a single JSON blob.
//
// Methods are not safe for concurrent use; the shell drives the
// repository from one goroutine, matching the event-loop model of the
// browser original.
type Repository struct {
	store    Store
	hub      *Hub
	sessions []Session
	hydrated bool
}

// NewRepository creates an empty repository backed by store. hub may be
// nil when no one listens for changes.
func NewRepository(store Store, hub *Hub) *Repository {
	return &Repository{store: store, hub: hub}
}

// Hydrate loads the persisted snapshot. It runs at most once; repeated
// calls are no-ops. An absent blob starts the repository empty. A
// corrupt blob also starts it empty and returns a ParseError so the
// caller can log it; the repository stays usable either way.
func (r *Repository) Hydrate() error {
	if r.hydrated {
		return nil
	}
	r.hydrated = true

	blob, ok := r.store.Get(KeyPreviousChats)
	if !ok || blob == "" {
		return nil
	}

	var sessions []Session
	if err := json.Unmarshal([]byte(blob), &sessions); err != nil {
		return &ParseError{Key: KeyPreviousChats, Err: err}
	}
	r.sessions = sessions
	return nil
}

// Upsert replaces the messages of the session titled title, or appends
// a new session at the end when no session has that title. The slot
// keeps its position on replace.
func (r *Repository) Upsert(title string, messages []Message) {
	msgs := CloneMessages(messages)
	replaced := false
	for i := range r.sessions {
		if r.sessions[i].Title == title {
			r.sessions[i].Messages = msgs
			replaced = true
			break
		}
	}
	if !replaced {
		r.sessions = append(r.sessions, Session{Title: title, Messages: msgs})
	}
	r.persist()
	r.hub.publish(EventSessions)
}

// Find returns a copy of the session with the given title, or nil.
func (r *Repository) Find(title string) *Session {
	for i := range r.sessions {
		if r.sessions[i].Title == title {
			s := Session{
				Title:    r.sessions[i].Title,
				Messages: CloneMessages(r.sessions[i].Messages),
			}
			return &s
		}
	}
	return nil
}

// Delete removes the session with the given title. Deleting an unknown
// title is a no-op apart from the rewritten snapshot.
func (r *Repository) Delete(title string) {
	filtered := r.sessions[:0]
	for _, s := range r.sessions {
		if s.Title != title {
			filtered = append(filtered, s)
		}
	}
	r.sessions = filtered
	r.persist()
	r.hub.publish(EventSessions)
}

// List returns the sessions in insertion order (oldest first).
func (r *Repository) List() []Session {
	out := make([]Session, len(r.sessions))
	for i, s := range r.sessions {
		out[i] = Session{Title: s.Title, Messages: CloneMessages(s.Messages)}
	}
	return out
}

// Len returns the number of saved sessions.
func (r *Repository) Len() int {
	return len(r.sessions)
}

// First returns a copy of the oldest session, or nil when empty.
func (r *Repository) First() *Session {
	if len(r.sessions) == 0 {
		return nil
	}
	s := Session{
		Title:    r.sessions[0].Title,
		Messages: CloneMessages(r.sessions[0].Messages),
	}
	return &s
}

func (r *Repository) persist() {
	blob, err := json.Marshal(r.sessions)
	if err != nil {
		LogWarn("failed to serialize sessions: %v", err)
		return
	}
	r.store.Set(KeyPreviousChats, string(blob))
}

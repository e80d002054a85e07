package internal

import (
	"encoding/json"
	"strings"
)

// Transcript is the active message sequence shown to the user, bound to
// at most one saved session. An unbound transcript is a draft: it shows
// the greeting and has no title until the first exchange completes.
// Every mutation writes a snapshot to the store under KeyChatHistory,
// independently of repository persistence, so a mid-conversation crash
// does not lose the tail that has not reached history yet.
//
// Like Repository, a Transcript is driven from one goroutine.
type Transcript struct {
	store    Store
	hub      *Hub
	title    string
	bound    bool
	messages []Message
}

// NewTranscript creates a draft transcript seeded with the greeting.
func NewTranscript(store Store, hub *Hub) *Transcript {
	return &Transcript{
		store:    store,
		hub:      hub,
		messages: GreetingMessages(),
	}
}

// Hydrate restores the last persisted snapshot, if any. A corrupt
// snapshot keeps the greeting seed and returns a ParseError.
func (t *Transcript) Hydrate() error {
	blob, ok := t.store.Get(KeyChatHistory)
	if !ok || blob == "" {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal([]byte(blob), &msgs); err != nil {
		return &ParseError{Key: KeyChatHistory, Err: err}
	}
	if len(msgs) > 0 {
		t.messages = msgs
	}
	return nil
}

// NewChat detaches the transcript from any session and resets it to the
// greeting. The previous session, if any, stays in the repository.
func (t *Transcript) NewChat() {
	t.title = ""
	t.bound = false
	t.messages = GreetingMessages()
	t.persist()
	t.hub.publish(EventTranscript)
}

// Rebind points the transcript at a saved session's state.
func (t *Transcript) Rebind(title string, messages []Message) {
	t.title = title
	t.bound = true
	t.messages = CloneMessages(messages)
	t.persist()
	t.hub.publish(EventTranscript)
}

// SetTitle names a draft before its first exchange resolves, so the
// session appears named while the round trip is still in flight.
func (t *Transcript) SetTitle(title string) {
	t.title = title
	t.bound = true
	t.hub.publish(EventTranscript)
}

// AppendUser appends a user message. The text must be non-empty after
// trimming; the controller validates before calling.
func (t *Transcript) AppendUser(text string) {
	if strings.TrimSpace(text) == "" {
		LogWarn("ignoring empty user message")
		return
	}
	t.append(Message{Text: text, Sender: SenderUser})
}

// AppendBot appends a bot message.
func (t *Transcript) AppendBot(text string) {
	t.append(Message{Text: text, Sender: SenderBot})
}

func (t *Transcript) append(msg Message) {
	t.messages = append(t.messages, msg)
	t.persist()
	t.hub.publish(EventTranscript)
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	return CloneMessages(t.messages)
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Title returns the bound session title; empty for a draft.
func (t *Transcript) Title() string {
	return t.title
}

// IsDraft reports whether the transcript is unbound.
func (t *Transcript) IsDraft() bool {
	return !t.bound
}

// DisplayTitle returns the title, or the draft placeholder.
func (t *Transcript) DisplayTitle() string {
	if t.bound {
		return t.title
	}
	return "New Chat"
}

func (t *Transcript) persist() {
	blob, err := json.Marshal(t.messages)
	if err != nil {
		LogWarn("failed to serialize transcript: %v", err)
		return
	}
	t.store.Set(KeyChatHistory, string(blob))
}

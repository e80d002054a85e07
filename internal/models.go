package internal

import "strings"

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Greeting is the synthetic bot message that opens every new chat.
const Greeting = "Hello! How can I help you today?"

// Message is a single transcript entry. Messages are append-only;
// position in the sequence is significant and never changes.
type Message struct {
	Text   string `json:"text" yaml:"text"`
	Sender Sender `json:"sender" yaml:"sender"`
}

// Session is a titled, persisted conversation. The title doubles as the
// primary key inside a Repository: there is no separate id, so two
// conversations started with the same first message share one slot and
// the later one overwrites the earlier.
type Session struct {
	Title    string    `json:"title" yaml:"title"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// GreetingMessages returns the seed sequence for a fresh chat.
func GreetingMessages() []Message {
	return []Message{{Text: Greeting, Sender: SenderBot}}
}

// CloneMessages copies a message slice so callers cannot alias
// repository or transcript state.
func CloneMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// TruncateTitle shortens a title for one-line display.
func TruncateTitle(title string, max int) string {
	title = strings.ReplaceAll(title, "\n", " ")
	if max <= 3 || len(title) <= max {
		return title
	}
	return title[:max-3] + "..."
}

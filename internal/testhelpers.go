package internal

// Test helpers shared with subpackage tests.

// CreateTestSession returns a small session for exporter tests.
func CreateTestSession(title string) *Session {
	return &Session{
		Title: title,
		Messages: []Message{
			{Text: Greeting, Sender: SenderBot},
			{Text: title, Sender: SenderUser},
			{Text: "Hi there!", Sender: SenderBot},
		},
	}
}

// CreateTestSessionWithMessages returns a session with the given messages.
func CreateTestSessionWithMessages(title string, messages []Message) *Session {
	return &Session{Title: title, Messages: messages}
}

package testutil

// Persisted-blob fixtures in the on-disk format: previousChats is a
// JSON array of {title, messages}, chatHistory a JSON array of
// {text, sender}.

// SessionsBlob is a valid previousChats snapshot with two sessions.
const SessionsBlob = `[` +
	`{"title":"Hello","messages":[` +
	`{"text":"Hello! How can I help you today?","sender":"bot"},` +
	`{"text":"Hello","sender":"user"},` +
	`{"text":"Hi there!","sender":"bot"}]},` +
	`{"title":"Weather?","messages":[` +
	`{"text":"Hello! How can I help you today?","sender":"bot"},` +
	`{"text":"Weather?","sender":"user"},` +
	`{"text":"Sunny.","sender":"bot"}]}]`

// HistoryBlob is a valid chatHistory snapshot.
const HistoryBlob = `[` +
	`{"text":"Hello! How can I help you today?","sender":"bot"},` +
	`{"text":"ping","sender":"user"}]`

// CorruptBlob does not parse as either snapshot.
const CorruptBlob = `{"title": truncated`

package internal

import (
	"context"
	"strings"
	"sync/atomic"
)

// Controller mediates between the shell, the active transcript, the
// session repository, and the generation endpoint. All shell intents
// (send, new chat, load chat, delete chat) funnel through it.
type Controller struct {
	repo       *Repository
	transcript *Transcript
	gen        Generator
	apiKey     string

	singleFlight bool
	inFlight     atomic.Bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithSingleFlight rejects a send while another is still awaiting the
// endpoint. The browser original had no such guard and let overlapping
// sends race; this is an opt-in hardening for shells that can issue
// concurrent sends.
func WithSingleFlight() ControllerOption {
	return func(c *Controller) {
		c.singleFlight = true
	}
}

// NewController wires a controller. apiKey is the credential forwarded
// to the endpoint; an empty key makes every send fail validation.
func NewController(repo *Repository, transcript *Transcript, gen Generator, apiKey string, opts ...ControllerOption) *Controller {
	c := &Controller{
		repo:       repo,
		transcript: transcript,
		gen:        gen,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start hydrates both stores and applies the startup binding rule: the
// loose transcript snapshot is restored first, then, if any sessions
// survived, the first stored session wins the binding. Hydration parse
// failures are logged and swallowed; the app stays usable with no
// history.
func (c *Controller) Start() {
	if err := c.transcript.Hydrate(); err != nil {
		LogWarn("discarding transcript snapshot: %v", err)
	}
	if err := c.repo.Hydrate(); err != nil {
		LogWarn("discarding session history: %v", err)
	}
	if first := c.repo.First(); first != nil {
		c.transcript.Rebind(first.Title, first.Messages)
	}
}

// Send runs one exchange: validate the prompt and credential, name a
// draft after its first prompt, append the user message, await the
// generator, then append the reply and commit the session to history.
//
// The user message and the title land before the round trip resolves,
// so the shell shows them immediately. On a generator failure the user
// message stays visible, nothing is committed, and the same text can be
// re-sent.
func (c *Controller) Send(ctx context.Context, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return &ValidationError{Field: "prompt", Reason: "message is empty"}
	}
	if c.apiKey == "" {
		return &ValidationError{Field: "apiKey", Reason: "no API key configured"}
	}

	if c.singleFlight {
		if !c.inFlight.CompareAndSwap(false, true) {
			return ErrBusy
		}
		defer c.inFlight.Store(false)
	}

	// The title is the verbatim first prompt, untrimmed. Two chats
	// opened with the same first message will collide in history.
	title := c.transcript.Title()
	if c.transcript.IsDraft() {
		title = prompt
		c.transcript.SetTitle(title)
	}
	c.transcript.AppendUser(prompt)

	reply, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	c.transcript.AppendBot(reply)
	c.repo.Upsert(title, c.transcript.Messages())
	return nil
}

// NewChat detaches the transcript into a fresh draft.
func (c *Controller) NewChat() {
	c.transcript.NewChat()
}

// LoadChat binds the transcript to the saved session with the given
// title. An unknown title is a no-op.
func (c *Controller) LoadChat(title string) {
	sess := c.repo.Find(title)
	if sess == nil {
		return
	}
	c.transcript.Rebind(sess.Title, sess.Messages)
}

// DeleteChat removes a session from history. When the active session is
// deleted, the transcript rebinds to the new first session, or resets
// to a fresh draft when none remain.
func (c *Controller) DeleteChat(title string) {
	wasActive := !c.transcript.IsDraft() && c.transcript.Title() == title
	c.repo.Delete(title)
	if !wasActive {
		return
	}
	if first := c.repo.First(); first != nil {
		c.transcript.Rebind(first.Title, first.Messages)
	} else {
		c.transcript.NewChat()
	}
}

// Sessions lists saved sessions in insertion order.
func (c *Controller) Sessions() []Session {
	return c.repo.List()
}

// Transcript exposes the active transcript for display.
func (c *Controller) Transcript() *Transcript {
	return c.transcript
}

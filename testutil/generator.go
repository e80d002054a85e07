package testutil

import (
	"context"
	"errors"
)

// ScriptedGenerator is a canned replacement for the generation client.
// It satisfies internal.Generator structurally so this package does not
// import internal (which would cycle through internal's own tests).
type ScriptedGenerator struct {
	// Replies are returned in order; when exhausted, the last one
	// repeats. Empty Replies with a nil Err yields "ok".
	Replies []string
	// Err, when set, makes every call fail with it.
	Err error
	// OnGenerate, when set, runs before each reply is produced. Tests
	// use it to observe state at the suspension point.
	OnGenerate func(prompt string)

	Calls   []string
	nextIdx int
}

// Generate returns the next scripted reply or the scripted error.
func (g *ScriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.Calls = append(g.Calls, prompt)
	if g.OnGenerate != nil {
		g.OnGenerate(prompt)
	}
	if g.Err != nil {
		return "", g.Err
	}
	if len(g.Replies) == 0 {
		return "ok", nil
	}
	reply := g.Replies[g.nextIdx]
	if g.nextIdx < len(g.Replies)-1 {
		g.nextIdx++
	}
	return reply, nil
}

// ErrScripted is a convenience error for failure-path tests.
var ErrScripted = errors.New("scripted generator failure")

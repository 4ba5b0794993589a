// Package speech narrates lesson text aloud. Narration is a nicety:
// every failure falls through to the next narrator and the chain ends
// in a silent no-op, so a broken speaker never blocks the learner.
package speech

import "context"

// Narrator speaks a line of text aloud.
type Narrator interface {
	Speak(ctx context.Context, text string) error
}

// Chain tries each narrator in order until one succeeds.
type Chain struct {
	narrators []Narrator
}

// NewChain builds a fallback chain. A Noop terminator is appended so
// Speak never fails.
func NewChain(narrators ...Narrator) *Chain {
	return &Chain{narrators: append(narrators, Noop{})}
}

func (c *Chain) Speak(ctx context.Context, text string) error {
	var err error
	for _, n := range c.narrators {
		if err = n.Speak(ctx, text); err == nil {
			return nil
		}
	}
	return err
}

// Noop is the silent terminator of the fallback chain.
type Noop struct{}

func (Noop) Speak(context.Context, string) error { return nil }

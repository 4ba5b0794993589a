package speech

import (
	"context"
	"fmt"
	"os/exec"
)

// Local narrates through an on-machine synthesizer: say on macOS,
// espeak elsewhere.
type Local struct {
	// lookPath is swappable for tests.
	lookPath func(string) (string, error)
}

// NewLocal creates the local-synthesizer narrator.
func NewLocal() *Local {
	return &Local{lookPath: exec.LookPath}
}

func (l *Local) Speak(ctx context.Context, text string) error {
	for _, synth := range []string{"say", "espeak"} {
		bin, err := l.lookPath(synth)
		if err != nil {
			continue
		}
		return exec.CommandContext(ctx, bin, text).Run()
	}
	return fmt.Errorf("no local speech synthesizer found")
}

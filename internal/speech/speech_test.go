package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
)

// failing always fails; used to exercise the chain.
type failing struct{ calls int }

func (f *failing) Speak(context.Context, string) error {
	f.calls++
	return errors.New("broken speaker")
}

// succeeding records what it spoke.
type succeeding struct{ spoke string }

func (s *succeeding) Speak(_ context.Context, text string) error {
	s.spoke = text
	return nil
}

func TestChainFallsThrough(t *testing.T) {
	first := &failing{}
	second := &succeeding{}
	chain := NewChain(first, second)

	if err := chain.Speak(context.Background(), "hello"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if first.calls != 1 {
		t.Errorf("first narrator calls = %d", first.calls)
	}
	if second.spoke != "hello" {
		t.Errorf("second narrator spoke %q", second.spoke)
	}
}

func TestChainEndsSilently(t *testing.T) {
	chain := NewChain(&failing{}, &failing{})
	if err := chain.Speak(context.Background(), "hello"); err != nil {
		t.Errorf("chain must end in a silent no-op, got %v", err)
	}
}

func TestElevenLabsSynthesizeCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if got := r.Header.Get("xi-api-key"); got != "test-key" {
			t.Errorf("xi-api-key = %q", got)
		}
		if r.URL.Path != "/v1/text-to-speech/voice-1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	e := NewElevenLabs(ElevenLabsConfig{
		APIKey:   "test-key",
		VoiceID:  "voice-1",
		BaseURL:  srv.URL,
		CacheDir: t.TempDir(),
	})

	p1, err := e.Synthesize(context.Background(), "welcome back")
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	p2, err := e.Synthesize(context.Background(), "welcome back")
	if err != nil {
		t.Fatalf("synthesize (cached): %v", err)
	}
	if p1 != p2 {
		t.Errorf("cache paths differ: %q vs %q", p1, p2)
	}
	if hits.Load() != 1 {
		t.Errorf("API hits = %d, want 1 (second call served from cache)", hits.Load())
	}

	// Different text misses the cache.
	if _, err := e.Synthesize(context.Background(), "something else"); err != nil {
		t.Fatalf("synthesize (new text): %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("API hits = %d, want 2", hits.Load())
	}
}

func TestElevenLabsDefaultCacheDir(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Setenv("HOME", cacheHome)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	// Config as the CLI builds it: API key and voice only.
	e := NewElevenLabs(ElevenLabsConfig{
		APIKey:  "test-key",
		VoiceID: "voice-1",
		BaseURL: srv.URL,
	})
	if e.cfg.CacheDir == "" {
		t.Fatal("cache dir not defaulted")
	}

	p, err := e.Synthesize(context.Background(), "hello")
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if !strings.HasPrefix(p, cacheHome) {
		t.Errorf("cached audio at %q, want it under %q", p, cacheHome)
	}
	if _, err := os.Stat(p); err != nil {
		t.Errorf("cached audio missing: %v", err)
	}
}

func TestElevenLabsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	e := NewElevenLabs(ElevenLabsConfig{
		APIKey:   "test-key",
		VoiceID:  "voice-1",
		BaseURL:  srv.URL,
		CacheDir: t.TempDir(),
	})

	if _, err := e.Synthesize(context.Background(), "hello"); err == nil {
		t.Error("expected error on non-2xx")
	}
}

func TestElevenLabsRequiresKey(t *testing.T) {
	e := NewElevenLabs(ElevenLabsConfig{CacheDir: t.TempDir()})
	if err := e.Speak(context.Background(), "hello"); err == nil {
		t.Error("expected error with no API key")
	}
}

func TestLocalWithNoSynthesizer(t *testing.T) {
	l := NewLocal()
	l.lookPath = func(string) (string, error) { return "", errors.New("not found") }

	if err := l.Speak(context.Background(), "hello"); err == nil {
		t.Error("expected error when no synthesizer is installed")
	}
}

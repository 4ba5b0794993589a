package speech

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	defaultModelID = "eleven_multilingual_v2"
	defaultVoiceID = "21m00Tcm4TlvDq8ikWAM"
)

// ElevenLabsConfig configures the hosted TTS narrator.
type ElevenLabsConfig struct {
	APIKey   string
	VoiceID  string
	ModelID  string
	BaseURL  string // overridable for tests
	CacheDir string
}

// ElevenLabs synthesizes speech through the ElevenLabs API. Synthesized
// audio is cached on disk keyed by SHA-1 of (voice, model, text) so the
// same line is never billed twice.
type ElevenLabs struct {
	cfg    ElevenLabsConfig
	client *http.Client

	// play plays an MP3 file. Swappable for tests.
	play func(ctx context.Context, path string) error
}

// NewElevenLabs creates the hosted narrator.
func NewElevenLabs(cfg ElevenLabsConfig) *ElevenLabs {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ModelID == "" {
		cfg.ModelID = defaultModelID
	}
	if cfg.VoiceID == "" {
		cfg.VoiceID = defaultVoiceID
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir()
	}
	return &ElevenLabs{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		play:   playFile,
	}
}

// defaultCacheDir resolves $XDG_CACHE_HOME/tutora/tts (via
// os.UserCacheDir), falling back to the temp dir when no home is
// resolvable.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "tutora", "tts")
}

func (e *ElevenLabs) Speak(ctx context.Context, text string) error {
	if e.cfg.APIKey == "" {
		return fmt.Errorf("elevenlabs API key not configured")
	}
	path, err := e.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	return e.play(ctx, path)
}

// Synthesize returns the path of the cached MP3 for the text, fetching
// it from the API on a cache miss.
func (e *ElevenLabs) Synthesize(ctx context.Context, text string) (string, error) {
	if err := os.MkdirAll(e.cfg.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create tts cache dir: %w", err)
	}

	key := sha1.Sum([]byte(e.cfg.VoiceID + "::" + e.cfg.ModelID + "::" + text))
	path := filepath.Join(e.cfg.CacheDir, hex.EncodeToString(key[:])+".mp3")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	audio, err := e.fetch(ctx, text)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("write tts cache: %w", err)
	}
	return path, nil
}

func (e *ElevenLabs) fetch(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{
		"text":     text,
		"model_id": e.cfg.ModelID,
		"voice_settings": map[string]any{
			"stability":         0.35,
			"similarity_boost":  0.85,
			"style":             0.4,
			"use_speaker_boost": true,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", e.cfg.BaseURL, e.cfg.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", e.cfg.APIKey)
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("elevenlabs returned %d: %s", resp.StatusCode, body)
	}
	return io.ReadAll(resp.Body)
}

// playFile plays an MP3 with whatever local player is installed.
func playFile(ctx context.Context, path string) error {
	for _, player := range []string{"afplay", "mpg123", "ffplay"} {
		bin, err := exec.LookPath(player)
		if err != nil {
			continue
		}
		args := []string{path}
		if player == "ffplay" {
			args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
		}
		return exec.CommandContext(ctx, bin, args...).Run()
	}
	return fmt.Errorf("no audio player found")
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkline/tutora/internal/app"
	"github.com/mkline/tutora/internal/backend"
	"github.com/mkline/tutora/internal/lessons"
	"github.com/mkline/tutora/internal/llm"
	"github.com/mkline/tutora/internal/questionbank"
	"github.com/mkline/tutora/internal/rag"
	"github.com/mkline/tutora/internal/sentiment"
	"github.com/mkline/tutora/internal/session"
	"github.com/mkline/tutora/internal/speech"
	"github.com/mkline/tutora/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// With TUTORA_BACKEND_URL set, questions, assessment analysis, lessons,
// sentiment, and session saves go to the hosted service; otherwise the
// in-process LLM stack is used.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := session.Deps{
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
	}

	if base := os.Getenv("TUTORA_BACKEND_URL"); base != "" {
		client := backend.New(backend.Config{
			BaseURL: base,
			UserID:  os.Getenv("TUTORA_USER_ID"),
		})
		deps.Source = client
		deps.Complete = client.CompleteAssessment
		deps.Lessons = lessons.NewRemoteService(client.GenerateLesson)
		deps.Sentiment = sentiment.NewRemoteService(client.AnalyzeSentiment)
		deps.Saver = client
	} else {
		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			}
		}

		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Learning sessions will be unavailable.")
		} else {
			corpus := loadCorpus()
			deps.Source = questionbank.New(provider, corpus, questionbank.DefaultConfig())
			deps.Lessons = lessons.NewService(provider, corpus, lessons.DefaultConfig())
		}
		deps.Sentiment = sentiment.NewService(provider)
	}
	defer deps.Sentiment.Close()

	return app.Run(app.Options{
		Deps:       deps,
		Narrator:   buildNarrator(),
		SkipSplash: skipSplash,
	})
}

// loadCorpus reads pre-chunked course material from the paths in
// TUTORA_CHUNKS. Load failure degrades to an empty corpus: prompts just
// go out without retrieval context.
func loadCorpus() *rag.Corpus {
	raw := os.Getenv("TUTORA_CHUNKS")
	if raw == "" {
		return rag.Empty()
	}
	paths := strings.Split(raw, string(os.PathListSeparator))
	corpus, err := rag.Load(paths...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: course material unavailable:", err)
		return rag.Empty()
	}
	return corpus
}

// buildNarrator assembles the narration fallback chain: ElevenLabs when
// a key is configured, then the local synthesizer, then silence.
func buildNarrator() speech.Narrator {
	var narrators []speech.Narrator
	if key := os.Getenv("TUTORA_ELEVENLABS_API_KEY"); key != "" {
		narrators = append(narrators, speech.NewElevenLabs(speech.ElevenLabsConfig{
			APIKey:  key,
			VoiceID: os.Getenv("TUTORA_ELEVENLABS_VOICE"),
		}))
	}
	narrators = append(narrators, speech.NewLocal(), speech.Noop{})
	return speech.NewChain(narrators...)
}

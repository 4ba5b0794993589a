package rag

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeChunkFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write chunk file: %v", err)
	}
	return path
}

func TestLoadMapFormat(t *testing.T) {
	path := writeChunkFile(t, "chunks.json",
		`{"notes.md": ["gradient descent minimizes loss", "momentum smooths updates"]}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestLoadListFormat(t *testing.T) {
	path := writeChunkFile(t, "chunks.json",
		`[{"file":"ocw.md","chunk":"policy gradients"},{"file":"ocw.md","chunk":"value iteration"}]`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
	if got := c.Sources(); len(got) != 1 || got[0] != "ocw.md" {
		t.Errorf("sources = %v", got)
	}
}

func TestLoadMergesMultipleFiles(t *testing.T) {
	a := writeChunkFile(t, "a.json", `{"notes.md": ["alpha beta"]}`)
	b := writeChunkFile(t, "b.json", `[{"file":"notes.md","chunk":"gamma delta"}]`)

	c, err := Load(a, b)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2 merged under one source", c.Len())
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := writeChunkFile(t, "bad.json", `"just a string"`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for non-chunk JSON")
	}
}

func TestFindRelevantRanksByOverlap(t *testing.T) {
	c := Empty()
	c.chunks = map[string][]string{
		"ml.md": {
			"supervised learning uses labeled data to fit a model",
			"reinforcement learning trains an agent with rewards",
			"cooking pasta requires boiling water",
		},
	}

	results := c.FindRelevant("how does supervised learning use labeled data", 2)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if !strings.Contains(results[0].Chunk, "supervised") {
		t.Errorf("top result = %q, want the supervised chunk first", results[0].Chunk)
	}
}

func TestFindRelevantExcludesZeroOverlap(t *testing.T) {
	c := Empty()
	c.chunks = map[string][]string{"ml.md": {"diffusion models sample noise"}}

	if results := c.FindRelevant("zzz qqq", 3); len(results) != 0 {
		t.Errorf("results = %v, want none for off-corpus query", results)
	}
}

func TestFindRelevantOnEmptyCorpus(t *testing.T) {
	if results := Empty().FindRelevant("anything", 3); results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestContextBlock(t *testing.T) {
	block := ContextBlock([]Result{
		{Source: "a.md", Chunk: "first"},
		{Source: "b.md", Chunk: "second"},
	})
	if !strings.Contains(block, "[a.md]") || !strings.Contains(block, "second") {
		t.Errorf("block = %q", block)
	}
	if ContextBlock(nil) != "" {
		t.Error("empty results should render empty block")
	}
}

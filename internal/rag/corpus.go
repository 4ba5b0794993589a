package rag

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Corpus holds pre-chunked course material grouped by source file.
type Corpus struct {
	chunks map[string][]string
}

// listEntry is the alternate on-disk format: a flat list of
// (file, chunk) pairs instead of a map of file to chunk list.
type listEntry struct {
	File  string `json:"file"`
	Chunk string `json:"chunk"`
}

// Load reads and merges chunk files. Each file holds either a JSON
// object mapping source names to chunk lists, or a JSON array of
// {file, chunk} entries; both formats merge into one corpus.
func Load(paths ...string) (*Corpus, error) {
	merged := make(map[string][]string)
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading chunk file %s: %w", path, err)
		}
		if err := mergeInto(merged, raw); err != nil {
			return nil, fmt.Errorf("parsing chunk file %s: %w", path, err)
		}
	}
	return &Corpus{chunks: merged}, nil
}

func mergeInto(dst map[string][]string, raw []byte) error {
	var asMap map[string][]string
	if err := json.Unmarshal(raw, &asMap); err == nil {
		for source, list := range asMap {
			dst[source] = append(dst[source], list...)
		}
		return nil
	}

	var asList []listEntry
	if err := json.Unmarshal(raw, &asList); err != nil {
		return fmt.Errorf("neither map nor list chunk format: %w", err)
	}
	for _, e := range asList {
		dst[e.File] = append(dst[e.File], e.Chunk)
	}
	return nil
}

// Empty returns a corpus with no chunks. Retrieval against it yields
// nothing, which callers treat as "no grounding context available".
func Empty() *Corpus {
	return &Corpus{chunks: map[string][]string{}}
}

// Sources returns the source names in the corpus, sorted.
func (c *Corpus) Sources() []string {
	names := make([]string, 0, len(c.chunks))
	for name := range c.chunks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of chunks across all sources.
func (c *Corpus) Len() int {
	n := 0
	for _, list := range c.chunks {
		n += len(list)
	}
	return n
}

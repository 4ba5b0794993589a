package rag

import (
	"regexp"
	"sort"
	"strings"
)

// Result is a retrieved chunk and the source it came from.
type Result struct {
	Source string
	Chunk  string
}

var wordPattern = regexp.MustCompile(`\w+`)

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(strings.ToLower(s), -1) {
		set[w] = true
	}
	return set
}

// FindRelevant returns up to topK chunks scored by keyword overlap with
// the query. Chunks sharing no words with the query are excluded, so an
// off-corpus query returns nothing rather than arbitrary chunks.
func (c *Corpus) FindRelevant(query string, topK int) []Result {
	queryWords := wordSet(query)
	if len(queryWords) == 0 || topK <= 0 {
		return nil
	}

	type scored struct {
		score int
		Result
	}
	var matches []scored
	for _, source := range c.Sources() {
		for _, chunk := range c.chunks[source] {
			score := 0
			for w := range wordSet(chunk) {
				if queryWords[w] {
					score++
				}
			}
			if score > 0 {
				matches = append(matches, scored{score, Result{Source: source, Chunk: chunk}})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) == 0 {
		return nil
	}
	if len(matches) > topK {
		matches = matches[:topK]
	}
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = m.Result
	}
	return results
}

// ContextBlock renders retrieved chunks as a prompt-ready block, one
// chunk per paragraph with its source named.
func ContextBlock(results []Result) string {
	if len(results) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("[" + r.Source + "]\n")
		b.WriteString(r.Chunk)
	}
	return b.String()
}

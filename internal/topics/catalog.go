package topics

import (
	"fmt"
	"slices"
)

// Get returns a topic by ID, or error if not found.
func Get(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", id)
	}
	return *t, nil
}

// All returns all topics in display order.
func All() []Topic {
	return slices.Clone(c.topics)
}

// DisplayName returns the human-readable name for a topic ID,
// falling back to the ID itself for ad-hoc topics.
func DisplayName(id string) string {
	if t, ok := c.byID[id]; ok {
		return t.Name
	}
	return id
}

package topics

// Topic represents a subject area the learner can study.
type Topic struct {
	ID          string
	Name        string
	Description string
	// Concepts seed the assessment prompts so early questions spread
	// across the topic instead of clustering on one idea.
	Concepts []string
	Keywords []string
}

// catalog holds all topics with precomputed indices.
type catalog struct {
	topics []Topic
	byID   map[string]*Topic
}

var c *catalog

func init() {
	c = buildCatalog(seedTopics())
}

func buildCatalog(topics []Topic) *catalog {
	ct := &catalog{
		topics: topics,
		byID:   make(map[string]*Topic, len(topics)),
	}
	for i := range ct.topics {
		ct.byID[ct.topics[i].ID] = &ct.topics[i]
	}
	return ct
}

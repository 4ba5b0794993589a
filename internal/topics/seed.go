package topics

// seedTopics returns the built-in AI literacy curriculum.
func seedTopics() []Topic {
	return []Topic{
		{
			ID:          "supervised-learning",
			Name:        "Supervised Learning",
			Description: "Learning from labeled examples: regression, classification, and how models generalize.",
			Concepts:    []string{"labels", "loss functions", "generalization", "overfitting"},
			Keywords:    []string{"supervised", "labels", "regression", "classification", "training"},
		},
		{
			ID:          "unsupervised-learning",
			Name:        "Unsupervised Learning",
			Description: "Finding structure without labels: clustering and dimensionality reduction.",
			Concepts:    []string{"clustering", "dimensionality reduction", "similarity"},
			Keywords:    []string{"unsupervised", "clustering", "kmeans", "pca", "embedding"},
		},
		{
			ID:          "reinforcement-learning",
			Name:        "Reinforcement Learning",
			Description: "Agents that learn by acting: policies, rewards, and exploration.",
			Concepts:    []string{"agents", "policies", "rewards", "exploration"},
			Keywords:    []string{"reinforcement", "agent", "policy", "reward", "environment"},
		},
		{
			ID:          "generative-models",
			Name:        "Generative Models",
			Description: "Models that create: density estimation, sampling, and diffusion.",
			Concepts:    []string{"density estimation", "sampling", "diffusion", "language models"},
			Keywords:    []string{"generative", "diffusion", "sampling", "llm", "transformer"},
		},
		{
			ID:          "neural-networks",
			Name:        "Neural Networks",
			Description: "The building blocks: layers, activations, and backpropagation.",
			Concepts:    []string{"layers", "activations", "backpropagation", "gradient descent"},
			Keywords:    []string{"neural", "network", "backpropagation", "gradient", "layer"},
		},
	}
}

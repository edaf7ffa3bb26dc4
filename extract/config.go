package extract

import "fmt"

// Config holds extraction thresholds. Pattern and keyword tables live in
// Tables; Config carries only the numeric knobs.
type Config struct {
	// MinTermLength is the minimum character length for a token to survive
	// filtering. Tokens at or below MinTermLength-1 characters are noise.
	MinTermLength int `yaml:"min_term_length"`

	// MaxPhraseWords is the longest multi-word window collected as a
	// phrase candidate.
	MaxPhraseWords int `yaml:"max_phrase_words"`

	// MinTermFrequency is the retention floor for single-word candidates
	// and tags.
	MinTermFrequency int `yaml:"min_term_frequency"`

	// MinPhraseFrequency is the retention floor for multi-word candidates,
	// which are far more noise-prone than unigrams.
	MinPhraseFrequency int `yaml:"min_phrase_frequency"`

	// MinSentenceChars discards sentence fragments at or below this length.
	MinSentenceChars int `yaml:"min_sentence_chars"`

	// MinStrength drops consolidated relationships at or below this value.
	MinStrength float64 `yaml:"min_strength"`

	// ConsolidationStep is the strength added per repeated observation of
	// the same (source, type, target) triple.
	ConsolidationStep float64 `yaml:"consolidation_step"`
}

// DefaultConfig returns extraction defaults.
func DefaultConfig() Config {
	return Config{
		MinTermLength:      3,
		MaxPhraseWords:     3,
		MinTermFrequency:   1,
		MinPhraseFrequency: 2,
		MinSentenceChars:   10,
		MinStrength:        0.25,
		ConsolidationStep:  0.1,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.MinTermLength < 1 {
		return fmt.Errorf("min_term_length must be positive, got %d", c.MinTermLength)
	}
	if c.MaxPhraseWords < 1 {
		return fmt.Errorf("max_phrase_words must be positive, got %d", c.MaxPhraseWords)
	}
	if c.MinTermFrequency < 1 {
		return fmt.Errorf("min_term_frequency must be positive, got %d", c.MinTermFrequency)
	}
	if c.MinPhraseFrequency < 1 {
		return fmt.Errorf("min_phrase_frequency must be positive, got %d", c.MinPhraseFrequency)
	}
	if c.MinStrength < 0 || c.MinStrength > 1 {
		return fmt.Errorf("min_strength must be within [0,1], got %f", c.MinStrength)
	}
	if c.ConsolidationStep <= 0 || c.ConsolidationStep > 1 {
		return fmt.Errorf("consolidation_step must be within (0,1], got %f", c.ConsolidationStep)
	}
	return nil
}

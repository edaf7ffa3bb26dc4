package hierarchy

// Specificity estimates how specific a concept is from its word count,
// corpus frequency, and context breadth. Longer phrases, rarer terms, and
// narrower context spreads all read as more specific. The result is bounded
// to [0,1]; the banding thresholds that consume it live in Config.
func Specificity(wordCount, frequency, contextCount, maxFrequency, totalDocs int) float64 {
	words := float64(wordCount-1) / 2.0
	if words > 1 {
		words = 1
	}
	if words < 0 {
		words = 0
	}

	rarity := 0.0
	if maxFrequency > 0 {
		rarity = 1.0 - float64(frequency)/float64(maxFrequency)
	}
	if rarity < 0 {
		rarity = 0
	}

	narrowness := 0.0
	if totalDocs > 0 {
		narrowness = 1.0 - float64(contextCount)/float64(totalDocs)
	}
	if narrowness < 0 {
		narrowness = 0
	}

	score := 0.4*words + 0.4*rarity + 0.2*narrowness
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

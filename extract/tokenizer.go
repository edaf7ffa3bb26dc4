package extract

import (
	"strings"
	"unicode"
)

// Token is a single word with its original casing preserved. Filtering and
// candidate keys use the lower-cased form; orthographic confidence cues need
// the raw form.
type Token struct {
	Raw   string
	Lower string
}

// Tokenizer turns raw text into filtered tokens and candidate phrases.
type Tokenizer struct {
	cfg  Config
	stop map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given config and stop-words.
func NewTokenizer(cfg Config, stopWords []string) *Tokenizer {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{cfg: cfg, stop: stop}
}

// Tokens splits text into word tokens, preserving original casing.
// Punctuation is stripped except hyphens and underscores inside words.
func (t *Tokenizer) Tokens(text string) []Token {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_'
	})

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "-_")
		if f == "" {
			continue
		}
		tokens = append(tokens, Token{Raw: f, Lower: strings.ToLower(f)})
	}
	return tokens
}

// Keep reports whether a token survives the stop-word, length, and numeric
// filters.
func (t *Tokenizer) Keep(tok Token) bool {
	if len(tok.Lower) < t.cfg.MinTermLength {
		return false
	}
	if _, ok := t.stop[tok.Lower]; ok {
		return false
	}
	return !isNumeric(tok.Lower)
}

// Candidate is a concept candidate with its canonical key and the raw form
// it was first observed in.
type Candidate struct {
	// Key is the canonical lower-cased, singularised term or phrase.
	Key string

	// Raw is the original surface form.
	Raw string

	// Words is the number of words in the candidate.
	Words int
}

// Candidates collects unigram and multi-word phrase candidates from text.
// A phrase window is kept only if every constituent word passes the filter.
func (t *Tokenizer) Candidates(text string) []Candidate {
	tokens := t.Tokens(text)

	var out []Candidate
	for i, tok := range tokens {
		if !t.Keep(tok) {
			continue
		}
		out = append(out, Candidate{Key: Singularize(tok.Lower), Raw: tok.Raw, Words: 1})

		for width := 2; width <= t.cfg.MaxPhraseWords; width++ {
			if i+width > len(tokens) {
				break
			}
			window := tokens[i : i+width]
			if !t.keepAll(window) {
				continue
			}
			lowers := make([]string, width)
			raws := make([]string, width)
			for j, w := range window {
				lowers[j] = w.Lower
				raws[j] = w.Raw
			}
			// Singularise only the head noun of a phrase.
			lowers[width-1] = Singularize(lowers[width-1])
			out = append(out, Candidate{
				Key:   strings.Join(lowers, " "),
				Raw:   strings.Join(raws, " "),
				Words: width,
			})
		}
	}
	return out
}

func (t *Tokenizer) keepAll(window []Token) bool {
	for _, tok := range window {
		if !t.Keep(tok) {
			return false
		}
	}
	return true
}

// Sentences splits text into sentences on '.', '!' and '?', discarding
// fragments at or below the configured minimum length.
func (t *Tokenizer) Sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) <= t.cfg.MinSentenceChars {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}

// Singularize reduces simple English plurals to their singular form so that
// "dogs" and "dog" count as one term. It is deliberately conservative: only
// regular plural endings are folded.
func Singularize(term string) string {
	switch {
	case len(term) > 4 && strings.HasSuffix(term, "ies"):
		return term[:len(term)-3] + "y"
	case len(term) > 4 && strings.HasSuffix(term, "sses"):
		return term[:len(term)-2]
	case len(term) > 3 && strings.HasSuffix(term, "s") &&
		!strings.HasSuffix(term, "ss") && !strings.HasSuffix(term, "us") &&
		!strings.HasSuffix(term, "is"):
		return term[:len(term)-1]
	default:
		return term
	}
}

// isNumeric reports whether the term is purely numeric.
func isNumeric(term string) bool {
	for _, r := range term {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(term) > 0
}

// Package text cleans raw document text into the term stream consumed by the
// analysis pipeline. The stages run in a fixed order: section stripping,
// tokenization (lowercasing, punctuation removal, whitespace normalization),
// stop-word removal, name removal, stemming, synonym folding. Each stage is a
// pure function so it can be tested on its own.
package text

import (
	"regexp"
	"strings"
)

var tokenizeCleanRegex = regexp.MustCompile(`[^a-z0-9\s-]`)

// Synonym folds a list of variant terms into one canonical term.
type Synonym struct {
	Canonical string
	Variants  []string
}

// Config selects which optional cleaning stages run and with what data.
type Config struct {
	// Names are document identifiers (e.g. region names) removed from every
	// document so a document's own name does not count as a term.
	Names []string
	// Synonyms are folding rules applied in order after stemming; canonical
	// terms should therefore be given in stemmed form.
	Synonyms []Synonym
	// KeepStopwords disables stop-word removal.
	KeepStopwords bool
	// KeepInflections disables stemming.
	KeepInflections bool
}

// Clean runs the full pipeline and returns the retained tokens in order.
func Clean(raw string, cfg Config) []string {
	tokens := Tokenize(StripSections(raw))
	if !cfg.KeepStopwords {
		tokens = RemoveStopWords(tokens)
	}
	tokens = RemoveNames(tokens, cfg.Names)
	if !cfg.KeepInflections {
		tokens = StemTokens(tokens)
	}
	return FoldSynonyms(tokens, cfg.Synonyms)
}

// StripSections drops heading lines from scraped guide text: short lines
// without sentence-ending punctuation, such as "Get in" or "Eat and drink".
// Body lines pass through untouched.
func StripSections(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isHeading(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.ContainsAny(trimmed, ".!?,;:") {
		return false
	}
	return len(strings.Fields(trimmed)) <= 4
}

// Tokenize lowercases the text, strips punctuation and splits on whitespace.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := tokenizeCleanRegex.ReplaceAllString(lower, "")
	return strings.Fields(cleaned)
}

// RemoveStopWords filters out common English function words.
func RemoveStopWords(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, isStopWord := stopWords[token]; !isStopWord {
			result = append(result, token)
		}
	}
	return result
}

// RemoveNames drops every token that appears in any of the given names.
// Names are tokenized with the same rules as document text, so multi-word
// names such as "Isle of Man" remove each of their words.
func RemoveNames(tokens []string, names []string) []string {
	if len(names) == 0 {
		return tokens
	}
	drop := make(map[string]struct{})
	for _, name := range names {
		for _, t := range Tokenize(name) {
			drop[t] = struct{}{}
		}
	}
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, found := drop[token]; !found {
			result = append(result, token)
		}
	}
	return result
}

// FoldSynonyms replaces tokens listed as a variant with their canonical
// term. Rules apply in order; the first rule claiming a token wins.
func FoldSynonyms(tokens []string, rules []Synonym) []string {
	if len(rules) == 0 {
		return tokens
	}
	canonical := make(map[string]string)
	for _, rule := range rules {
		for _, v := range rule.Variants {
			if _, claimed := canonical[v]; !claimed {
				canonical[v] = rule.Canonical
			}
		}
	}
	result := make([]string, len(tokens))
	for i, token := range tokens {
		if c, found := canonical[token]; found {
			result[i] = c
		} else {
			result[i] = token
		}
	}
	return result
}

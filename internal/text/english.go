package text

import (
	_ "embed"
	"encoding/json"
	"log"
	"sort"
	"strings"
)

// StemmingRules is the suffix-stripping configuration loaded from the
// embedded JSON file.
type StemmingRules struct {
	Suffixes []string `json:"suffixes"`
	MinLen   int      `json:"min_len"`
	OneShot  bool     `json:"one_shot"`
}

type languageData struct {
	Stopwords []string      `json:"stopwords"`
	Stemming  StemmingRules `json:"stemming"`
}

//go:embed english.json
var englishJSON []byte

var (
	stopWords     map[string]struct{}
	stemmingRules StemmingRules
)

func init() {
	var data languageData
	if err := json.Unmarshal(englishJSON, &data); err != nil {
		log.Fatalf("FATAL: Failed to parse embedded english.json: %v", err)
	}

	stopWords = make(map[string]struct{}, len(data.Stopwords))
	for _, word := range data.Stopwords {
		stopWords[word] = struct{}{}
	}

	stemmingRules = data.Stemming
	// Sort by length descending to match longer suffixes first (e.g. "ies" before "s")
	sort.Slice(stemmingRules.Suffixes, func(i, j int) bool {
		return len(stemmingRules.Suffixes[i]) > len(stemmingRules.Suffixes[j])
	})
}

// StemTokens applies the suffix-stripping rules to every token and returns a
// new slice with the stemmed tokens.
func StemTokens(tokens []string) []string {
	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = stemWord(token, stemmingRules)
	}
	return stemmed
}

func stemWord(word string, rules StemmingRules) string {
	// Do not stem if the word is too short.
	if len(word) < rules.MinLen {
		return word
	}

	stemmed := word
	for _, suffix := range rules.Suffixes {
		if strings.HasSuffix(stemmed, suffix) && len(stemmed)-len(suffix) >= rules.MinLen-1 {
			stemmed = strings.TrimSuffix(stemmed, suffix)
			if rules.OneShot {
				break
			}
		}
	}
	return stemmed
}

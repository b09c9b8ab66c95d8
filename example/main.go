// file: example/main.go
package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cheefelix/textthemes"
)

// APIRequest represents the JSON structure expected by the /analyze endpoint.
// It contains the corpus to be analyzed and all optional configuration
// parameters.
type APIRequest struct {
	Documents       []DocumentPayload `json:"documents"`
	NumThemes       int               `json:"num_themes"`
	Vocabulary      []string          `json:"vocabulary,omitempty"`
	MinDocs         int               `json:"min_docs,omitempty"`
	Synonyms        []SynonymPayload  `json:"synonyms,omitempty"`
	Labels          map[int]string    `json:"labels,omitempty"`
	KeepStopwords   bool              `json:"keep_stopwords,omitempty"`
	KeepInflections bool              `json:"keep_inflections,omitempty"`
}

// DocumentPayload is one corpus entry in the request body.
type DocumentPayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// SynonymPayload is one synonym-folding rule in the request body.
type SynonymPayload struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
}

// ThemePayload is one discovered theme in the response.
type ThemePayload struct {
	ID    int      `json:"id"`
	Label string   `json:"label"`
	Terms []string `json:"terms"`
}

// ThemeWeightPayload is one entry of a document's ranked theme distribution.
type ThemeWeightPayload struct {
	ThemeID int     `json:"theme_id"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Share   float64 `json:"share"`
}

// RankingPayload is one document's theme distribution in the response.
type RankingPayload struct {
	Document string               `json:"document"`
	Total    int                  `json:"total"`
	NoData   bool                 `json:"no_data"`
	Themes   []ThemeWeightPayload `json:"themes,omitempty"`
}

// MergePayload is one dendrogram merge step in the response.
type MergePayload struct {
	A        int     `json:"a"`
	B        int     `json:"b"`
	Distance float64 `json:"distance"`
}

// Stats contains performance statistics for a single request.
type Stats struct {
	NumDocuments     int     `json:"num_documents"`
	NumTerms         int     `json:"num_terms"`
	ProcessingTimeMS float64 `json:"processing_time_ms"`
}

// APIResponse is the complete response structure returned by /analyze.
type APIResponse struct {
	Documents   []string         `json:"documents"`
	Terms       []string         `json:"terms"`
	Themes      []ThemePayload   `json:"themes"`
	ThemeCounts [][]float64      `json:"theme_counts"`
	Rankings    []RankingPayload `json:"rankings"`
	Dendrogram  []MergePayload   `json:"dendrogram"`
	Stats       Stats            `json:"stats"`
}

// APIError is the structure for JSON error responses.
type APIError struct {
	Error string `json:"error"`
}

// handleAnalyze handles HTTP POST requests to the /analyze endpoint.
func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 4<<20) // 4MB limit

	var req APIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	docs := make([]textthemes.Document, len(req.Documents))
	for i, d := range req.Documents {
		docs[i] = textthemes.Document{Name: d.Name, Text: d.Text}
	}
	synonyms := make([]textthemes.Synonym, len(req.Synonyms))
	for i, s := range req.Synonyms {
		synonyms[i] = textthemes.Synonym{Canonical: s.Canonical, Variants: s.Variants}
	}

	opts := textthemes.Options{
		NumThemes:       req.NumThemes,
		Vocabulary:      req.Vocabulary,
		MinDocs:         req.MinDocs,
		Synonyms:        synonyms,
		Labels:          req.Labels,
		KeepStopwords:   req.KeepStopwords,
		KeepInflections: req.KeepInflections,
	}

	startTime := time.Now()
	result, err := textthemes.Analyze(docs, opts)
	duration := time.Since(startTime)

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, textthemes.ErrNoDocuments) ||
			errors.Is(err, textthemes.ErrEmptyVocabulary) ||
			errors.Is(err, textthemes.ErrInvalidThemeCount) {
			status = http.StatusBadRequest
		}
		jsonError(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(buildResponse(result, duration))
}

// buildResponse flattens the library result into JSON-friendly payloads.
func buildResponse(result *textthemes.Result, duration time.Duration) APIResponse {
	themes := make([]ThemePayload, len(result.Themes))
	for i, th := range result.Themes {
		themes[i] = ThemePayload{ID: th.ID, Label: th.Label, Terms: th.Terms}
	}

	counts := make([][]float64, len(result.Themes))
	for i := range counts {
		row := make([]float64, len(result.Documents))
		for j := range row {
			row[j] = result.ThemeCounts.At(i, j)
		}
		counts[i] = row
	}

	rankings := make([]RankingPayload, len(result.Rankings))
	for i, rk := range result.Rankings {
		payload := RankingPayload{Document: rk.Document, Total: rk.Total, NoData: rk.NoData}
		for _, tw := range rk.Themes {
			payload.Themes = append(payload.Themes, ThemeWeightPayload{
				ThemeID: tw.ThemeID, Label: tw.Label, Count: tw.Count, Share: tw.Share,
			})
		}
		rankings[i] = payload
	}

	dendrogram := make([]MergePayload, len(result.Dendrogram))
	for i, m := range result.Dendrogram {
		dendrogram[i] = MergePayload{A: m.A, B: m.B, Distance: m.Distance}
	}

	return APIResponse{
		Documents:   result.Documents,
		Terms:       result.Terms,
		Themes:      themes,
		ThemeCounts: counts,
		Rankings:    rankings,
		Dendrogram:  dendrogram,
		Stats: Stats{
			NumDocuments:     len(result.Documents),
			NumTerms:         len(result.Terms),
			ProcessingTimeMS: float64(duration.Microseconds()) / 1000.0,
		},
	}
}

// jsonError writes a standard JSON error message to the response.
func jsonError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(APIError{Error: message})
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", handleAnalyze)

	addr := ":8080"
	if v := os.Getenv("ADDR"); v != "" {
		addr = v
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	log.Printf("Starting server on %s...", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not start server: %s\n", err)
	}
}

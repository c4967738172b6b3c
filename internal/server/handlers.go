package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/founder-fit/internal/pipeline"
	"github.com/jonathan/founder-fit/internal/ranking"
	"github.com/jonathan/founder-fit/internal/scoring"
	"github.com/jonathan/founder-fit/internal/types"
)

// ScoreResponse represents the response for /score
type ScoreResponse struct {
	Traits types.TraitScores  `json:"traits"`
	Models []types.ModelScore `json:"models"`
}

// RankResponse represents the response for /rank
type RankResponse struct {
	Models        []types.ModelScore `json:"models"`
	TopMatches    []types.ModelScore `json:"top_matches,omitempty"`
	BottomMatches []types.ModelScore `json:"bottom_matches,omitempty"`
}

// ReportStatusResponse represents the response for /reports/{key}/status
type ReportStatusResponse struct {
	ReportKey string `json:"report_key"`
	Cached    bool   `json:"cached"`
	Viewed    bool   `json:"viewed"`
	Unlocked  bool   `json:"unlocked"`
}

// decodeAnswers reads and validates the quiz answers payload shared by
// the scoring and generation endpoints.
func (s *Server) decodeAnswers(w http.ResponseWriter, r *http.Request) (*types.QuizAnswers, bool) {
	var answers types.QuizAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if err := s.validate.Struct(&answers); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			s.errorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("Invalid answer %s: failed %s check", fe.Field(), fe.Tag()))
			return nil, false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid answers: "+err.Error())
		return nil, false
	}

	return &answers, true
}

// handleScore computes the normalized trait profile for a set of answers
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	answers, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		Traits: scoring.ComputeTraitScores(answers),
		Models: ranking.RankModels(answers).Models,
	})
}

// handleRank scores every business model for a set of answers. The
// optional top and bottom query parameters also return those slices.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	answers, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	ranked := ranking.RankModels(answers)
	resp := RankResponse{Models: ranked.Models}

	if n := queryCount(r, "top"); n > 0 {
		resp.TopMatches = ranked.TopMatches(n)
	}
	if n := queryCount(r, "bottom"); n > 0 {
		resp.BottomMatches = ranked.BottomMatches(n)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGenerate runs the full report pipeline and returns the result.
// Duplicate requests while a run is in flight get 409 Conflict.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	answers, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	result, err := pipeline.Run(r.Context(), s.pipelineOptions(answers))
	if err != nil {
		if errors.Is(err, pipeline.ErrAlreadyRunning) {
			s.errorResponse(w, http.StatusConflict, "A report is already being generated")
			return
		}
		if r.Context().Err() != nil {
			// Client went away; nothing useful to write.
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGenerateStream runs the pipeline and streams progress over SSE
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	answers, ok := s.decodeAnswers(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Progress arrives from the pipeline's ticker goroutine as well as
	// the stage transitions; writes must be serialized.
	var mu sync.Mutex
	opts := s.pipelineOptions(answers)
	opts.OnProgress = func(event types.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		sse.WriteProgress(event)
	}

	result, err := pipeline.Run(r.Context(), opts)
	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		if errors.Is(err, pipeline.ErrAlreadyRunning) {
			sse.WriteError("A report is already being generated")
			return
		}
		if r.Context().Err() != nil {
			return
		}
		log.Printf("Generation stream failed: %v", err)
		sse.WriteError("Generation failed")
		return
	}

	sse.WriteComplete(result)
}

// handleCacheStatus summarizes the currently valid cache entries
func (s *Server) handleCacheStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.cache.Status())
}

// handleCacheClear invalidates every cached report
func (s *Server) handleCacheClear(w http.ResponseWriter, _ *http.Request) {
	s.cache.InvalidateAll()
	log.Println("Report cache cleared")
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleReportStatus reports the cache, view, and unlock state for one
// report key
func (s *Server) handleReportStatus(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		s.errorResponse(w, http.StatusBadRequest, "Report key is required")
		return
	}

	_, cached := s.cache.Get(key)
	viewed, err := s.views.HasViewed(r.Context(), key)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ledger error: "+err.Error())
		return
	}
	unlocked, err := s.ledger.IsUnlocked(r.Context(), key)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ledger error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ReportStatusResponse{
		ReportKey: key,
		Cached:    cached,
		Viewed:    viewed,
		Unlocked:  unlocked,
	})
}

// handleReportUnlock marks a report as unlocked
func (s *Server) handleReportUnlock(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		s.errorResponse(w, http.StatusBadRequest, "Report key is required")
		return
	}

	if err := s.ledger.Unlock(r.Context(), key); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ledger error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"report_key": key,
		"status":     "unlocked",
	})
}

// pipelineOptions assembles the run options shared by the generate
// endpoints.
func (s *Server) pipelineOptions(answers *types.QuizAnswers) pipeline.Options {
	return pipeline.Options{
		Answers:      answers,
		Generator:    s.generator,
		Cache:        s.cache,
		Lock:         s.locker,
		Views:        s.views,
		StageTimeout: s.cfg.StageTimeout(),
		MinDuration:  s.cfg.MinDuration(),
		TotalBudget:  s.cfg.TotalBudget(),
		Verbose:      s.cfg.Verbose,
	}
}

// queryCount parses a positive integer query parameter, returning 0
// when absent or malformed.
func queryCount(r *http.Request, name string) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

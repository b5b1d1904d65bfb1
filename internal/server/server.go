// Package server exposes ladder search over HTTP.
//
// The server loads one dictionary at startup and answers searches against
// it. Every request runs an independent search (own visited set and
// frontier), so no locking is needed around the shared dictionary.
// Completed results may be cached keyed by dictionary content hash.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ytkachuk12/wordgraph/pkg/cache"
	apperrors "github.com/ytkachuk12/wordgraph/pkg/errors"
	"github.com/ytkachuk12/wordgraph/pkg/ladder"
	"github.com/ytkachuk12/wordgraph/pkg/observability"
	"github.com/ytkachuk12/wordgraph/pkg/wordio"
)

// Server answers ladder searches against a fixed dictionary.
type Server struct {
	dict     *ladder.Dictionary
	dictHash string
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

// New creates a Server. dictHash must be the content hash of the loaded
// word list (see cache.HashWords); it scopes cache keys to this exact
// dictionary. Pass a NullCache to disable caching.
func New(dict *ladder.Dictionary, dictHash string, c cache.Cache, cacheTTL time.Duration, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		dict:     dict,
		dictHash: dictHash,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Handler builds the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ladder", s.handleLadder)
		r.Get("/neighbors", s.handleNeighbors)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"words":  s.dict.Len(),
	})
}

// handleLadder answers GET /api/v1/ladder?start=&end=.
//
// Invalid words are a 400 with the structured error code. An exhausted
// search is a 200 with found=false: not finding a ladder is a valid
// outcome, not a server failure.
func (s *Server) handleLadder(w http.ResponseWriter, r *http.Request) {
	start := ladder.Normalize(r.URL.Query().Get("start"))
	end := ladder.Normalize(r.URL.Query().Get("end"))

	for _, word := range []string{start, end} {
		if err := apperrors.ValidateWord(word); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	key := cache.SearchKey(s.dictHash, start, end)
	if data, ok, err := s.cache.Get(r.Context(), key); err != nil {
		s.logger.Warnf("cache get failed: %v", err)
	} else if ok {
		var res wordio.Result
		if err := json.Unmarshal(data, &res); err == nil {
			observability.Cache().OnCacheHit(r.Context(), "ladder")
			res.SearchID = searchID()
			writeJSON(w, http.StatusOK, res)
			return
		}
	}
	observability.Cache().OnCacheMiss(r.Context(), "ladder")

	observability.Search().OnSearchStart(r.Context(), start, end)
	began := time.Now()
	path, found, err := s.dict.Find(r.Context(), start, end)
	observability.Search().OnSearchComplete(r.Context(), start, end, found, path.Steps(), time.Since(began), err)
	if err != nil {
		status := http.StatusInternalServerError
		if apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	res := wordio.NewResult(start, end, path, found, time.Since(began))
	res.SearchID = searchID()

	if data, err := json.Marshal(res); err == nil {
		if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
			s.logger.Warnf("cache set failed: %v", err)
		} else {
			observability.Cache().OnCacheSet(r.Context(), "ladder", len(data))
		}
	}

	writeJSON(w, http.StatusOK, res)
}

// handleNeighbors answers GET /api/v1/neighbors?word=.
func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	word := ladder.Normalize(r.URL.Query().Get("word"))
	if err := apperrors.ValidateWord(word); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	neighbors := s.dict.Neighbors(word)
	writeJSON(w, http.StatusOK, map[string]any{
		"word":      word,
		"neighbors": neighbors,
		"count":     len(neighbors),
	})
}

// logRequests logs one structured line per request with the chi request id.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(began).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// searchID returns a unique identifier for one search response. The chi
// request id is host-scoped; a uuid keeps ids unique across instances.
func searchID() string {
	return uuid.NewString()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{
		"error": apperrors.UserMessage(err),
		"code":  string(apperrors.GetCode(err)),
	})
}

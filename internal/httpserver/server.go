// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, metrics).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Game endpoints (optional auth): POST /game/new, POST /game/guess.
//   - Stateless solver endpoint: POST /assist/filter.
//   - Daily Challenge endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Guests are identified by an anonymous cookie; their results move to
//     the account on signup/login.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/config"
	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/stats"
	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// Server bundles router, word lists, in-memory game store, and DB handle.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	lex      *words.Lexicon
	store    store.Store
	db       *sql.DB
	stats    *stats.Store
	validate *validator.Validate
	metrics  *metrics

	// playMu serializes guesses; a *game.Game is not safe for concurrent use.
	playMu sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, lex *words.Lexicon, st store.Store, db *sql.DB) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		lex:      lex,
		store:    st,
		db:       db,
		stats:    stats.NewStore(db),
		validate: newValidator(),
	}
	s.metrics = newMetrics(func() float64 { return float64(st.Len()) })

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(s.metrics.instrument)            // prometheus counters
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-helper",
			"endpoints": []string{
				"/health", "/metrics", "POST /game/new", "POST /game/guess",
				"POST /assist/filter", "/daily/*", "/auth/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lex.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g, "length": s.lex.Length()})
	})

	// Game endpoints: OPTIONAL AUTH (guests can play)
	play := s.r.With(s.withOptionalAuth(), s.withPlayer)
	play.Post("/game/new", s.handleNewGame)
	play.Post("/game/guess", s.handleGuess)

	s.r.Post("/assist/filter", s.handleAssistFilter)

	// Daily Challenge: OPTIONAL AUTH (guests can play; progress persisted on finish)
	s.mountDaily(play)

	s.mountAuthRoutes()
	s.mountStatsRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (tests, custom http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// HTTPServer returns an *http.Server for addr; the caller owns its lifecycle.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends {"error": code, "message": ...}.
func writeError(w http.ResponseWriter, status int, code string, err error) {
	body := map[string]string{"error": code}
	if err != nil {
		body["message"] = err.Error()
	}
	writeJSON(w, status, body)
}

// writeDomainError maps engine and store errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "finished", err)
	case errors.Is(err, game.ErrNotInWordList):
		writeError(w, http.StatusBadRequest, "not_in_word_list", err)
	case errors.Is(err, feedback.ErrLengthMismatch):
		writeError(w, http.StatusBadRequest, "length_mismatch", err)
	case errors.Is(err, feedback.ErrInvalidCharacter):
		writeError(w, http.StatusBadRequest, "invalid_character", err)
	case errors.Is(err, feedback.ErrInvariantViolation):
		writeError(w, http.StatusBadRequest, "contradictory_feedback", err)
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeError(w, http.StatusInternalServerError, "server_error", nil)
	}
}

// decode reads a JSON body into v and validates it. An empty body is only
// accepted when allowEmpty is set. On failure the response is already written.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			writeError(w, http.StatusBadRequest, "bad_json", err)
			return false
		}
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}

// ------------------------------ GAME ---------------------------------------

const (
	modeNormal = "normal"
	modeAssist = "assist"
)

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode    string `json:"mode" validate:"omitempty,oneof=normal assist"`
	Answer  string `json:"answer" validate:"omitempty,alpha"` // optional fixed answer; a practice game
	Curated bool   `json:"curated"`                           // assist candidates from the answers list
}
type newGameRes struct {
	GameID    string `json:"gameId"`
	Mode      string `json:"mode"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Remaining int    `json:"remaining,omitempty"`
}

// handleNewGame creates a new in-memory game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !s.decode(w, r, &req, true) {
		return
	}
	if req.Mode == "" {
		req.Mode = modeNormal
	}

	g, err := game.New(s.lex, game.Settings{
		Answer:   req.Answer,
		Rows:     s.cfg.MaxGuesses,
		Assist:   req.Mode == modeAssist,
		Curated:  req.Curated,
		Practice: req.Answer != "",
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	res := newGameRes{GameID: g.ID, Mode: req.Mode, Rows: g.Rows, Cols: g.Cols}
	if a := g.Assistant(); a != nil {
		res.Remaining = len(a.Remaining())
	}
	log.Debug().Str("gameId", g.ID).Str("mode", req.Mode).Msg("new game")
	writeJSON(w, http.StatusOK, res)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId" validate:"required"`
	Guess  string `json:"guess" validate:"required"`
}
type guessRes struct {
	Colors      feedback.Colors    `json:"colors"`
	Number      int                `json:"number"`
	State       string             `json:"state"` // "playing" | "won" | "lost"
	Answer      string             `json:"answer,omitempty"`
	Remaining   []string           `json:"remaining,omitempty"`
	Count       *int               `json:"count,omitempty"`
	Constraints *feedback.Snapshot `json:"constraints,omitempty"`
}

// handleGuess applies a guess to an in-memory game and records the result
// once the game is finished.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if !s.decode(w, r, &req, false) {
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.playMu.Lock()
	turn, err := g.ApplyGuess(req.Guess)
	var snap *feedback.Snapshot
	if a := g.Assistant(); err == nil && a != nil {
		v := a.Constraints().Snapshot()
		snap = &v
	}
	s.playMu.Unlock()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}

	mode := modeNormal
	res := guessRes{Colors: turn.Colors, Number: turn.Number, State: turn.State}
	if snap != nil {
		mode = modeAssist
		n := len(turn.Remaining)
		res.Remaining, res.Count, res.Constraints = turn.Remaining, &n, snap
	}
	s.metrics.guesses.WithLabelValues(mode).Inc()

	if turn.State != game.StatePlaying {
		if turn.State == game.StateLost {
			res.Answer = g.Answer
		}
		s.finish(r, g)
	}
	writeJSON(w, http.StatusOK, res)
}

// finish records a completed game for the player (best effort).
func (s *Server) finish(r *http.Request, g *game.Game) {
	won, n := g.Outcome()
	s.metrics.finished.WithLabelValues(g.State()).Inc()
	if g.Practice {
		log.Debug().Str("gameId", g.ID).Msg("practice game, result not recorded")
		return
	}
	if err := s.stats.Record(r.Context(), stats.Result{
		PlayerID: playerID(r), GameID: g.ID, Answer: g.Answer, Won: won, Guesses: n,
	}); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record result")
	}
	log.Info().Str("gameId", g.ID).Bool("won", won).Int("guesses", n).Msg("game finished")
}

// ------------------------------ ASSIST -------------------------------------

type assistReq struct {
	Curated      bool               `json:"curated"`
	Observations []game.Observation `json:"observations" validate:"dive"`
}
type assistRes struct {
	Constraints feedback.Snapshot `json:"constraints"`
	Candidates  []string          `json:"candidates"`
	Count       int               `json:"count"`
}

// handleAssistFilter rebuilds the constraints from the posted observations
// and returns the surviving candidates. Nothing is stored.
func (s *Server) handleAssistFilter(w http.ResponseWriter, r *http.Request) {
	var req assistReq
	if !s.decode(w, r, &req, true) {
		return
	}
	st, err := game.Replay(s.lex.Length(), req.Observations)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := feedback.Filter(s.lex.Candidates(req.Curated), st)
	s.metrics.candidates.Observe(float64(len(out)))
	writeJSON(w, http.StatusOK, assistRes{Constraints: st.Snapshot(), Candidates: out, Count: len(out)})
}

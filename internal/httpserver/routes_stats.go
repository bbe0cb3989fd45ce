// internal/httpserver/routes_stats.go
//
// Signed-in player history:
//   - GET /stats/me   → played, wins, streaks, guess distribution
//   - GET /games/mine → most recent finished games

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
)

func (s *Server) mountStatsRoutes() {
	gated := s.r.With(s.requireAuth())

	gated.Get("/stats/me", func(w http.ResponseWriter, r *http.Request) {
		me := currentUser(r)
		sum, err := s.stats.Summary(r.Context(), me.ID, s.cfg.MaxGuesses)
		if err != nil {
			log.Error().Err(err).Str("user", me.ID).Msg("stats summary")
			writeError(w, http.StatusInternalServerError, "db_error", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": me.ID, "username": me.Username, "stats": sum})
	})

	gated.Get("/games/mine", func(w http.ResponseWriter, r *http.Request) {
		me := currentUser(r)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > 50 {
			limit = 50
		}
		rows, err := s.stats.Recent(r.Context(), me.ID, limit)
		if err != nil {
			log.Error().Err(err).Str("user", me.ID).Msg("recent games")
			writeError(w, http.StatusInternalServerError, "db_error", nil)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	})
}

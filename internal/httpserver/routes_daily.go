// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start a daily game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's daily game
//   - GET  /daily/leaderboard → fetch top results for today (or ?date=YYYY-MM-DD)
//
// Each player can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play. Every finished daily game is
// persisted, won or lost, so the day stays locked; only wins rank on the
// leaderboard. Finished games also go to the player's stats.

package httpserver

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/daily"
	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/game"
)

const stateLocked = "locked"

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	now      func() time.Time
	sessions map[string]*dailySession // active sessions keyed by player|date
	mu       sync.Mutex               // guards sessions and their games
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	puzzle daily.Puzzle
	game   *game.Game
	start  time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	d := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		now:      time.Now,
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", d.handleNew)
		r.Post("/guess", d.handleGuess)
		r.Get("/leaderboard", d.handleLeaderboard)
	})
}

func (d *dailyServer) today() daily.Puzzle {
	return daily.For(d.srv.lex, d.now(), d.srv.cfg.DailySalt)
}

// dropStale forgets sessions from earlier days. Caller holds d.mu.
func (d *dailyServer) dropStale(date string) {
	for k, sess := range d.sessions {
		if sess.puzzle.Date != date {
			delete(d.sessions, k)
		}
	}
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

// handleNew creates or reuses a daily session for the current date.
//   - If the player already has a DB row for today → Played=true.
//   - Otherwise create/reuse an in-memory session and return its GameID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := playerID(r)
	p := d.today()

	played, err := d.store.AlreadyPlayed(r.Context(), uid, p.Date)
	if err != nil {
		log.Error().Err(err).Msg("daily already played")
		writeError(w, http.StatusInternalServerError, "server_error", nil)
		return
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: p.Date, Played: true})
		return
	}

	key := uid + "|" + p.Date
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dropStale(p.Date)

	sess, ok := d.sessions[key]
	if !ok {
		g, err := game.New(d.srv.lex, game.Settings{Answer: p.Answer, Rows: d.srv.cfg.MaxGuesses})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		sess = &dailySession{puzzle: p, game: g, start: d.now()}
		d.sessions[key] = sess
	}
	writeJSON(w, http.StatusOK, dailyNewRes{
		GameID: sess.game.ID,
		Date:   p.Date,
		Played: sess.game.Finished,
		Rows:   sess.game.Rows,
		Cols:   sess.game.Cols,
	})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId" validate:"required"`
	Word   string `json:"word" validate:"required"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Colors  feedback.Colors `json:"colors"`
	State   string          `json:"state"` // playing | won | lost | locked
	Guesses int             `json:"guesses"`
	Answer  string          `json:"answer,omitempty"`
}

// handleGuess validates and applies a guess for today's daily session.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	var p dailyGuessReq
	if !d.srv.decode(w, r, &p, false) {
		return
	}
	uid := playerID(r)
	puzzle := d.today()

	d.mu.Lock()
	sess, ok := d.sessions[uid+"|"+puzzle.Date]
	if !ok || sess.game.ID != p.GameID {
		d.mu.Unlock()
		writeError(w, http.StatusConflict, "no_session", nil)
		return
	}
	g := sess.game
	if g.Finished {
		n := len(g.Guesses)
		d.mu.Unlock()
		writeJSON(w, http.StatusOK, dailyGuessRes{Colors: feedback.Colors{}, State: stateLocked, Guesses: n})
		return
	}
	turn, err := g.ApplyGuess(p.Word)
	d.mu.Unlock()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	d.srv.metrics.guesses.WithLabelValues("daily").Inc()

	res := dailyGuessRes{Colors: turn.Colors, State: turn.State, Guesses: turn.Number}
	if turn.State != game.StatePlaying {
		// Losses are stored too so the day stays locked; only wins rank.
		if _, err := d.store.InsertResult(r.Context(), daily.Result{
			UserID:    uid,
			Date:      sess.puzzle.Date,
			WordIndex: sess.puzzle.WordIndex,
			Guesses:   turn.Number,
			ElapsedMs: d.now().Sub(sess.start).Milliseconds(),
			Won:       turn.State == game.StateWon,
		}); err != nil {
			log.Warn().Err(err).Str("player", uid).Msg("insert daily result")
		}
		if turn.State == game.StateLost {
			res.Answer = g.Answer
		}
		d.srv.finish(r, g)
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date", err)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := d.store.Leaderboard(r.Context(), date, min(limit, 100))
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}

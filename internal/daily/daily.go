// internal/daily/daily.go
//
// Daily challenge word selection.
// Every player gets the same answer for a UTC date; the index is derived from
// HMAC(salt, YYYY-MM-DD) so the sequence cannot be guessed without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle-helper/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle identifies the daily answer for one date.
type Puzzle struct {
	Date      string `json:"date"`
	WordIndex int    `json:"wordIndex"`
	Answer    string `json:"-"`
}

// For picks the puzzle of the given date from the lexicon's answers.
func For(lex *words.Lexicon, date time.Time, salt string) Puzzle {
	i := WordIndex(date, salt, len(lex.Answers()))
	return Puzzle{Date: DateKey(date), WordIndex: i, Answer: lex.At(i)}
}

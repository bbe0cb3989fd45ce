// internal/words/words.go
//
// Word list management for the game and the helper.
//
// Responsibilities:
//   - Load answer and allowed-guess lists from files or the embedded defaults.
//   - Normalize to uppercase and keep only words of the configured length.
//   - Maintain sets for quick lookups (answers only, answers ∪ guesses).
//   - Supply RandomAnswer, IsAllowed, IsAnswer, Candidates and Stats.
//
// Load behavior:
//   1. AnswersFile and AllowedFile both set → answers from the first,
//      guesses from the second.
//   2. Only one of them set → that file serves as both lists.
//   3. Neither set → embedded defaults from the assets package.
//
// Files hold whitespace separated words; lines starting with '#' are skipped.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/assets"
	"github.com/robalobadob/wordle-helper/internal/feedback"
)

// DefaultLength is the classic five-letter game.
const DefaultLength = 5

// ErrNoAnswers is returned when no usable answer survives loading.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Options selects the word list sources.
type Options struct {
	AnswersFile string
	AllowedFile string
	Length      int // 0 means DefaultLength
}

// Lexicon is an immutable pair of word lists of one length.
type Lexicon struct {
	length     int
	answers    []string            // canonical answers, file order
	allowed    []string            // answers ∪ guesses, file order
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load builds a Lexicon from opts.
func Load(opts Options) (*Lexicon, error) {
	length := opts.Length
	if length <= 0 {
		length = DefaultLength
	}

	var ansList, allowList []string
	var err error
	switch {
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		if ansList, err = readWordFile(opts.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(opts.AllowedFile); err != nil {
			return nil, err
		}
	case opts.AnswersFile != "" || opts.AllowedFile != "":
		path := opts.AnswersFile + opts.AllowedFile
		if ansList, err = readWordFile(path); err != nil {
			return nil, err
		}
		allowList = ansList
	default:
		if ansList, err = readWordFS(assets.FS, "answers.txt"); err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		if allowList, err = readWordFS(assets.FS, "allowed.txt"); err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
	}
	return New(length, ansList, allowList)
}

// New normalizes raw word lists into a Lexicon. Every answer is also allowed.
func New(length int, answers, allowed []string) (*Lexicon, error) {
	l := &Lexicon{
		length:     length,
		answersSet: make(map[string]struct{}),
		allowedSet: make(map[string]struct{}),
	}
	skipped := 0
	for _, raw := range answers {
		w, err := feedback.NormalizeWord(raw, length)
		if err != nil {
			skipped++
			continue
		}
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answersSet[w] = struct{}{}
		l.answers = append(l.answers, w)
		l.allowedSet[w] = struct{}{}
		l.allowed = append(l.allowed, w)
	}
	for _, raw := range allowed {
		w, err := feedback.NormalizeWord(raw, length)
		if err != nil {
			skipped++
			continue
		}
		if _, dup := l.allowedSet[w]; dup {
			continue
		}
		l.allowedSet[w] = struct{}{}
		l.allowed = append(l.allowed, w)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("length", length).Msg("words: dropped malformed entries")
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// readWordFile loads every whitespace separated word from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	return readWords(f)
}

// readWordFS is readWordFile for an embedded list.
func readWordFS(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWords(f)
}

// readWords tokenizes a list: whitespace separated, '#' starts a comment line.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.Fields(line)...)
	}
	return out, sc.Err()
}

// Length is the word length of every entry.
func (l *Lexicon) Length() int { return l.length }

// Answers returns the canonical answers. The slice must not be modified.
func (l *Lexicon) Answers() []string { return l.answers }

// Allowed returns every accepted guess, answers first. The slice must not be modified.
func (l *Lexicon) Allowed() []string { return l.allowed }

// Candidates is the starting list for the helper. Curated restricts it to
// the answers list; otherwise every accepted word is a candidate.
func (l *Lexicon) Candidates(curated bool) []string {
	src := l.allowed
	if curated {
		src = l.answers
	}
	return append([]string(nil), src...)
}

// At returns answer i modulo the list size.
func (l *Lexicon) At(i int) string {
	n := len(l.answers)
	return l.answers[((i%n)+n)%n]
}

// RandomAnswer returns a cryptographically random answer.
func (l *Lexicon) RandomAnswer() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return l.answers[0]
	}
	return l.answers[n.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lexicon) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToUpper(strings.TrimSpace(w))]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lexicon) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToUpper(strings.TrimSpace(w))]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lexicon) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}

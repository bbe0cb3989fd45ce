// internal/words/default.go
//
// The embedded five-letter lexicon, loaded once on first use.

package words

import "sync"

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the embedded lexicon.
func Default() (*Lexicon, error) {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = Load(Options{Length: DefaultLength})
	})
	return defaultLex, defaultErr
}

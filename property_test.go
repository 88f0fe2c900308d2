package suffixtree

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

const (
	lowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	tenSymbolAlphabet = "abcdefghij"
)

// randomWord returns a random string over alphabet, biasing toward
// repeats (a small alphabet relative to length) so the generated words
// actually exercise suffix links and Rule 2b splits instead of always
// producing a trivial star-shaped tree.
func randomWord(f *fuzz.Fuzzer, alphabet string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		var n uint8
		f.Fuzz(&n)
		buf[i] = alphabet[int(n)%len(alphabet)]
	}
	return string(buf)
}

// foreignSuffix is guaranteed not to occur in any word drawn from
// alphabet, since it uses bytes outside every alphabet this file uses.
const foreignSuffix = "\x00\x01"

func runPropertyCheck(t *testing.T, seed int64, trials int, alphabet string, length int) {
	f := fuzz.NewWithSeed(seed)
	for trial := 0; trial < trials; trial++ {
		word := randomWord(f, alphabet, length)
		tr := New(word)

		assert.True(t, tr.Find(""), "word=%q", word)
		assert.LessOrEqual(t, tr.NodeCount(), 2*len(word)+1, "word=%q", word)

		for _, sub := range allSubstrings(word) {
			assert.True(t, tr.Find(sub), "word=%q sub=%q", word, sub)
		}

		assert.False(t, tr.Find(word+foreignSuffix), "word=%q", word)
	}
}

// TestProperty_ShortRandomWords covers spec §8's "Random 500×|w|=8
// lowercase" scenario.
func TestProperty_ShortRandomWords(t *testing.T) {
	runPropertyCheck(t, 1, 500, lowercaseAlphabet, 8)
}

// TestProperty_LongRandomWords covers spec §8's "Random 500×|w|=40
// over a 10-symbol alphabet" scenario.
func TestProperty_LongRandomWords(t *testing.T) {
	runPropertyCheck(t, 2, 500, tenSymbolAlphabet, 40)
}

func TestProperty_FullyRandomBytes(t *testing.T) {
	// A secondary pass over wider, less structured input, using
	// math/rand directly rather than gofuzz's uint8 stream, to make
	// sure the property holds outside the two alphabets above too.
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		length := r.Intn(20)
		buf := make([]byte, length)
		for i := range buf {
			buf[i] = byte(r.Intn(256))
		}
		word := string(buf)
		tr := New(word)

		for _, sub := range allSubstrings(word) {
			assert.True(t, tr.Find(sub), "word=%q sub=%q", word, sub)
		}
	}
}

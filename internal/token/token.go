// Package token implements the tokenizer helper used by the sequence
// matcher: it splits a stream of chunks into lowercase word tokens, keeping
// a carry of the trailing incomplete token across chunk boundaries so that
// a token split by a chunk boundary is still recognized whole.
//
// A token is a maximal run of Unicode alphanumeric code points plus '_';
// everything else is a separator. Tokens are lowercased rune by rune with
// unicode.ToLower; no further Unicode case folding is attempted.
package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// byteClass partitions ASCII bytes into "token byte" (1) or "separator" (0),
// following the ByteClasses equivalence-class idiom: a single array lookup
// replaces repeated range comparisons on the hot path. Bytes >= 0x80 fall
// through to the Unicode-aware slow path in isTokenRune.
var byteClass [256]byte

func init() {
	for b := byte('0'); b <= '9'; b++ {
		byteClass[b] = 1
	}
	for b := byte('a'); b <= 'z'; b++ {
		byteClass[b] = 1
	}
	for b := byte('A'); b <= 'Z'; b++ {
		byteClass[b] = 1
	}
	byteClass['_'] = 1
}

func isTokenRune(r rune) bool {
	if r < utf8.RuneSelf {
		return byteClass[byte(r)] == 1
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenizer incrementally splits chunked text into lowercase tokens,
// carrying a trailing partial token between Feed calls.
type Tokenizer struct {
	carry strings.Builder
}

// Feed logically prepends the tokenizer's carry to chunk, splits the result
// into tokens, and returns every *completed* token (lowercased). The
// trailing incomplete token, if any, is retained in the carry for the next
// Feed or Flush call. A separator always flushes the carry as a completed
// token.
func (t *Tokenizer) Feed(chunk string) []string {
	if chunk == "" {
		return nil
	}

	var tokens []string
	var cur strings.Builder
	if t.carry.Len() > 0 {
		cur.WriteString(t.carry.String())
		t.carry.Reset()
	}

	for _, r := range chunk {
		if isTokenRune(r) {
			cur.WriteRune(unicode.ToLower(r))
			continue
		}
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	if cur.Len() > 0 {
		t.carry.WriteString(cur.String())
	}
	return tokens
}

// Flush emits the trailing carry (if any) as a completed token and clears
// it. Called by the engine when the caller signals end-of-stream.
func (t *Tokenizer) Flush() (string, bool) {
	if t.carry.Len() == 0 {
		return "", false
	}
	tok := t.carry.String()
	t.carry.Reset()
	return tok, true
}

// Reset clears the carry, restoring the tokenizer to its initial state.
func (t *Tokenizer) Reset() {
	t.carry.Reset()
}

// Package title reformats text following English title-capitalization
// rules.
//
// The first word, the last word, and every word that opens a new
// sentence are always capitalized. Punctuated abbreviations (R.I.P.),
// brackets () {} [] <> and quotes "" '' attached to words are handled
// correctly. Corner-case proofness is good but should not be expected;
// correct results on every input variation are more or less impossible.
//
// Words kept in lower case unless their position forces otherwise:
//
//	a, an, and, as, at, but, by, en, etc, for, from,
//	if, in, of, on, or, the, to, via, von, vs, with
//
// The list can be replaced per call with TitleizeWith.
//
// Example:
//
//	Input:  "tears for fears @ rule the world: the greatest hits"
//	Output: "Tears for Fears @ Rule the World: The Greatest Hits"
//
// All functions are pure and safe for concurrent use.
package title

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// endSentence holds the characters that, as the last character of a
// word, mark the next word as the start of a new sentence.
const endSentence = ".,:;!?&/@+-"

// lowercase is the default minor-word list, in canonical order.
var lowercase = []string{
	"a", "an", "and", "as", "at", "but", "by", "en", "etc", "for", "from",
	"if", "in", "of", "on", "or", "the", "to", "via", "von", "vs", "with",
}

var lowercaseSet = wordSet(lowercase)

// DefaultLowercase returns a copy of the default minor-word list.
func DefaultLowercase() []string {
	return append([]string(nil), lowercase...)
}

// Capitalize capitalizes every word, including sub-words, in s.
//
// It is the strings.Title replacement that actually works: each maximal
// run of word characters (Unicode letters, Unicode numbers, underscore),
// optionally joined once by an apostrophe to a further run of word
// characters, has its first character title-cased and the rest
// lower-cased. Characters outside any run pass through unchanged, so
// "satan's" is a single run while each letter of "r.i.p." is its own.
func Capitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		end := runEnd(s, i)
		writeCapitalized(&b, s[i:end])
		i = end
	}
	return b.String()
}

// Titleize capitalizes text following English title capitalization
// rules, using the default minor-word list.
func Titleize(text string) string {
	return titleize(text, lowercaseSet)
}

// TitleizeWith is Titleize with a caller-supplied minor-word list.
// Words are expected in lower case; an empty list lowers nothing.
func TitleizeWith(text string, lower []string) string {
	return titleize(text, wordSet(lower))
}

func titleize(text string, lower map[string]struct{}) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	last := len(words) - 1
	skipNext := false
	out := make([]string, len(words))

	for i, word := range words {
		// Sentence state for this word was decided by the previous one.
		skip := skipNext

		// Decide whether the next word starts a new sentence. Punctuated
		// abbreviations end with a dot but never end a sentence.
		end, _ := utf8.DecodeLastRuneInString(word)
		skipNext = strings.ContainsRune(endSentence, end) && !isAbbrev(word)

		switch {
		case skip || i == 0 || i == last:
			out[i] = Capitalize(word)
		case member(lower, word):
			out[i] = strings.ToLower(word)
		default:
			out[i] = Capitalize(word)
		}
	}

	return strings.Join(out, " ")
}

// isAbbrev reports whether word is a punctuated abbreviation: two or
// more repetitions of a single letter followed by a dot, e.g. "R.I.P.".
// Digits and underscore do not count as letters here.
func isAbbrev(word string) bool {
	pairs := 0
	i := 0
	for i < len(word) {
		r, size := utf8.DecodeRuneInString(word[i:])
		if !unicode.IsLetter(r) {
			return false
		}
		i += size
		if i >= len(word) || word[i] != '.' {
			return false
		}
		i++
		pairs++
	}
	return pairs >= 2
}

// member reports whether word, lower-cased, is an element of set. The
// whole word must match, so a word with an attached bracket or quote
// never matches its bare form.
func member(set map[string]struct{}, word string) bool {
	_, ok := set[strings.ToLower(word)]
	return ok
}

// runEnd returns the end offset of the word run starting at start: one
// or more word runes, extended at most once by an apostrophe followed by
// one or more further word runes.
func runEnd(s string, start int) int {
	i := wordEnd(s, start)
	if i < len(s) && s[i] == '\'' {
		if j := wordEnd(s, i+1); j > i+1 {
			i = j
		}
	}
	return i
}

// wordEnd consumes word runes from pos and returns the end offset.
func wordEnd(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !isWordRune(r) {
			break
		}
		pos += size
	}
	return pos
}

// writeCapitalized writes run with its first rune title-cased and every
// following rune lower-cased, apostrophes included as-is.
func writeCapitalized(b *strings.Builder, run string) {
	first := true
	for _, r := range run {
		if first {
			b.WriteRune(unicode.ToTitle(r))
			first = false
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
}

// isWordRune reports whether r is a word character: a Unicode letter,
// a Unicode number, or underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

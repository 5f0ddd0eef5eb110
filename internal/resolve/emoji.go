package resolve

import (
	"strings"
	"unicode/utf8"
)

// Emoji blocks recognized by the pipeline: emoticons, misc symbols and
// pictographs, transport, regional indicators, misc symbols, dingbats.
var emojiRanges = [][2]rune{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E0, 0x1F1FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
	{0xFE0F, 0xFE0F}, // variation selector riding on the previous emoji
}

func isEmojiRune(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// isEmojiOnly reports whether a trimmed string consists entirely of emoji
// (whitespace between them allowed) and is short enough to treat as a
// reaction rather than a question.
func isEmojiOnly(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > 10 {
		return false
	}
	sawEmoji := false
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if !isEmojiRune(r) {
			return false
		}
		sawEmoji = true
	}
	return sawEmoji
}

// stripEmoji removes emoji runes, keeping everything else intact.
func stripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isEmojiRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

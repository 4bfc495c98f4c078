package pashto

import "strings"

// translitMap is a rule based Pashto to Latin mapping in the LingDocs
// phonetics style. Short vowels are context dependent and unwritten, so
// this stays an approximation used only when the dictionary carries no
// romanization of its own.
var translitMap = map[string]string{
	"ا": "aa", "آ": "aa", "ب": "b", "پ": "p", "ت": "t", "ټ": "T", "ث": "s", "ج": "j",
	"چ": "ch", "ح": "h", "خ": "kh", "څ": "ts", "ځ": "dz", "د": "d", "ډ": "D", "ذ": "z",
	"ر": "r", "ړ": "R", "ز": "z", "ژ": "jz", "ږ": "G", "س": "s", "ش": "sh", "ښ": "x",
	"ص": "s", "ض": "z", "ط": "t", "ظ": "z", "ع": "'", "غ": "gh", "ف": "f", "ق": "q",
	"ک": "k", "ګ": "g", "ل": "l", "م": "m", "ن": "n", "ڼ": "N", "و": "w", "ه": "h",
	"ی": "y", "ې": "e", "ۍ": "uy", "ئ": "ey",

	// common vowel digraphs, checked before single runes
	"وا": "waa", "وي": "wee", "وو": "oo",
}

// Transliterate renders Pashto script as approximate Latin phonetics.
// Unknown runes pass through unchanged.
func Transliterate(text string) string {
	rs := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(rs); {
		if i+1 < len(rs) {
			if out, ok := translitMap[string(rs[i:i+2])]; ok {
				b.WriteString(out)
				i += 2
				continue
			}
		}
		if out, ok := translitMap[string(rs[i])]; ok {
			b.WriteString(out)
		} else {
			b.WriteRune(rs[i])
		}
		i++
	}
	return b.String()
}

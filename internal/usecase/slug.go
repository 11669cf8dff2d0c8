package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxFolderSlugLen = 50

// Turkish letters that survive Unicode decomposition unchanged.
var turkishASCII = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ş", "s", "Ş", "s",
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FolderSlug derives the storage folder name for a listing from its
// title: lower-cased, transliterated to ASCII, whitespace collapsed to
// hyphens, stripped to [a-z0-9-], truncated to 50 characters. The
// derivation is deterministic but not collision-free; blob object names
// stay unique on their own.
func FolderSlug(title string) string {
	s := turkishASCII.Replace(title)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // suppress leading hyphens
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxFolderSlugLen {
		slug = strings.TrimRight(slug[:maxFolderSlugLen], "-")
	}
	return slug
}

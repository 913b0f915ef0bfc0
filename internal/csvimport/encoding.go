// Package csvimport turns heterogeneous vendor CSV exports into normalized
// inventory rows: encoding detection, dialect classification, per-dialect
// field mapping, a generic header auto-mapper for unknown layouts, and the
// duplicate filter run before commit.
package csvimport

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// DecodeAuto decodes a vendor CSV payload to UTF-8. Exports come in either
// UTF-8 or Shift_JIS with no declared charset, so we try UTF-8 first and fall
// back to Shift_JIS when the result looks mangled: replacement characters
// present, or not a single Japanese character in a file that should have them.
func DecodeAuto(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	if utf8.Valid(raw) {
		s := string(raw)
		if !strings.ContainsRune(s, utf8.RuneError) && (hasJapanese(s) || isASCII(s)) {
			return s, nil
		}
	}

	decoded, _, err := transform.String(japanese.ShiftJIS.NewDecoder(), string(raw))
	if err != nil {
		// Shift_JIS failed too; return the lossy UTF-8 reading.
		return string(raw), nil
	}
	return decoded, nil
}

func hasJapanese(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

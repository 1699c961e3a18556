package subtitles

import "strings"

// IllegalFilenameChars lists the characters SanitizeText removes. Each is
// rejected in file names by at least one supported filesystem.
const IllegalFilenameChars = `?:*"`

var illegalReplacer = strings.NewReplacer("?", "", ":", "", "*", "", `"`, "")

// SanitizeText removes every character in IllegalFilenameChars and leaves all
// other runes, including non-ASCII text, untouched.
func SanitizeText(text string) string {
	return illegalReplacer.Replace(text)
}

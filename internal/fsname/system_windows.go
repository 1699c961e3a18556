//go:build windows

package fsname

// Windows file APIs take UTF-16; Go converts from UTF-8 at the syscall, so
// names must stay UTF-8 regardless of the ANSI code page.
const unicodeFileNames = true

func systemEncodingName() string {
	return "utf-8"
}

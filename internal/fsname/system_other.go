//go:build !windows

package fsname

import (
	"os"
	"strings"
)

// POSIX file names are raw bytes, so any charset can be written.
const unicodeFileNames = false

// systemEncodingName derives the charset from the POSIX locale variables, e.g.
// "zh_CN.GB18030" yields "GB18030". Locales without a charset are UTF-8.
func systemEncodingName() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			continue
		}
		if at := strings.IndexByte(value, '@'); at >= 0 {
			value = value[:at]
		}
		if dot := strings.IndexByte(value, '.'); dot >= 0 && dot < len(value)-1 {
			return value[dot+1:]
		}
		return "utf-8"
	}
	return "utf-8"
}

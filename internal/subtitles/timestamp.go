package subtitles

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Millis converts an "HH:MM:SS.mmm" timestamp into total milliseconds. The four
// components are read as integers separated by any single character; reading
// stops at the first component that is not a number and the remaining
// components count as zero, so malformed input yields a partial total.
func Millis(ts string) int64 {
	fields := timestampFields(ts)
	return ((fields[0]*3600)+(fields[1]*60)+fields[2])*1000 + fields[3]
}

// FormatMillis renders milliseconds as a zero-padded 9-digit decimal string.
func FormatMillis(ms int64) string {
	return fmt.Sprintf("%09d", ms)
}

// MillisString is FormatMillis(Millis(ts)).
func MillisString(ts string) string {
	return FormatMillis(Millis(ts))
}

// FormatClock renders milliseconds as HH:MM:SS.mmm.
func FormatClock(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	d := time.Duration(ms) * time.Millisecond
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, h, m, s, d/time.Millisecond)
}

// ParseTimestamp strictly parses HH:MM:SS.mmm (or the SRT comma form) and
// returns the offset it denotes.
func ParseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ",", ".")
	clock, frac, found := strings.Cut(value, ".")
	if !found {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(clock, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(frac)
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 || millis < 0 || millis > 999 {
		return 0, fmt.Errorf("timestamp out of range %q", value)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

func timestampFields(ts string) [4]int64 {
	var fields [4]int64
	rest := ts
	for i := range fields {
		n, tail, ok := leadingInt(strings.TrimLeft(rest, " \t"))
		if !ok {
			break
		}
		fields[i] = n
		tail = strings.TrimLeft(tail, " \t")
		if tail == "" {
			break
		}
		_, size := utf8.DecodeRuneInString(tail)
		rest = tail[size:]
	}
	return fields
}

func leadingInt(s string) (int64, string, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, s, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, s, false
	}
	return n, s[end:], true
}

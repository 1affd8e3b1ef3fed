package trips

import "bytes"

// hourFromDateTime extracts the hour of day from a date-time value inside
// line[b:e]. The date portion is never inspected; the time portion is a loose
// H:MM or HH:MM, tolerating stray spaces before the colon ("9:05", "09:05",
// "9 :05" all yield 9). The two characters after the colon must form a minute
// in 00-59; the minute is a shape check only and is not returned. ok is false
// when a separator is missing, the digits are not digits, or the hour falls
// outside 0-23.
func hourFromDateTime(line []byte, b, e int) (int, bool) {
	b, e = trimRange(line, b, e)
	if b >= e {
		return 0, false
	}

	sp := bytes.IndexByte(line[b:e], ' ')
	if sp < 0 {
		return 0, false
	}
	sp += b

	colon := bytes.IndexByte(line[sp+1:e], ':')
	if colon < 0 {
		return 0, false
	}
	colon += sp + 1

	m0 := colon + 1
	if m0+1 >= e {
		return 0, false
	}
	if !isDigit(line[m0]) || !isDigit(line[m0+1]) {
		return 0, false
	}
	minute := int(line[m0]-'0')*10 + int(line[m0+1]-'0')
	if minute > 59 {
		return 0, false
	}

	// units digit: first non-space walking back from the colon
	i := colon - 1
	for i > b && isSpace(line[i]) {
		i--
	}
	if !isDigit(line[i]) {
		return 0, false
	}
	hour := int(line[i] - '0')

	// tens digit only when directly adjacent, so the last digit of the date
	// never bleeds into a single-digit hour
	if i > b && isDigit(line[i-1]) {
		hour = int(line[i-1]-'0')*10 + hour
	}

	if hour > 23 {
		return 0, false
	}
	return hour, true
}

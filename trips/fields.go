package trips

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// commaPositions scans line once and records every comma position into buf.
// The caller recycles buf between lines so the scan does not allocate.
func commaPositions(line []byte, buf []int) []int {
	buf = buf[:0]
	for i := 0; i < len(line); i++ {
		if line[i] == ',' {
			buf = append(buf, i)
		}
	}
	return buf
}

// fieldRange resolves the half-open byte range [b,e) of the 0-based field
// at index. The field before the first comma is index 0; the last field ends
// at the line end, not at a comma. ok is false when the line holds fewer
// fields than index+1.
func fieldRange(line []byte, commas []int, index int) (b, e int, ok bool) {
	if index < 0 || index > len(commas) {
		return 0, 0, false
	}
	if index > 0 {
		b = commas[index-1] + 1
	}
	e = len(line)
	if index < len(commas) {
		e = commas[index]
	}
	return b, e, true
}

// trimRange shrinks [b,e) past leading and trailing whitespace without
// copying. The result may be empty (b == e).
func trimRange(line []byte, b, e int) (int, int) {
	for b < e && isSpace(line[b]) {
		b++
	}
	for e > b && isSpace(line[e-1]) {
		e--
	}
	return b, e
}

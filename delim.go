package ex2rst

import "strings"

// docDelims are the delimiter styles recognized as documentation block
// markers. Opener and closer styles are matched independently; the example
// conventions accept a block opened with one style and closed with the other.
var docDelims = [...]string{`"""`, `'''`}

// openerAt reports the content following a documentation opener at the start
// of s. An optional raw-string prefix before the delimiter is accepted.
func openerAt(s string) (rest string, ok bool) {
	if len(s) > 0 && (s[0] == 'r' || s[0] == 'R') {
		s = s[1:]
	}
	for _, delim := range docDelims {
		if strings.HasPrefix(s, delim) {
			return s[len(delim):], true
		}
	}
	return "", false
}

// closerAt reports the content preceding a documentation closer at the end
// of s. The caller is expected to have right-trimmed s first; a closer is
// only a closer when nothing follows it on the line.
func closerAt(s string) (content string, ok bool) {
	for _, delim := range docDelims {
		if strings.HasSuffix(s, delim) {
			return s[:len(s)-len(delim)], true
		}
	}
	return "", false
}

// cutComment drops everything from the first comment sentinel onward. Used
// for line classification only; emitted code keeps its comments.
func cutComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// leadingSpaceWidth counts the leading run of whitespace characters in s.
func leadingSpaceWidth(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return i
		}
	}
	return len(s)
}

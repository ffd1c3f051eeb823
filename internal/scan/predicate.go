package scan

// The numeric class deliberately folds in the fractional point, so a run like
// 1.2.3 lexes as a single numeric token and fails later at float conversion.
func isDigit(c byte) bool {
	return ('0' <= c && c <= '9') || c == '.'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNewline(c byte) bool {
	return c == '\r' || c == '\n'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// Either quote class delimits a string; open and close are matched by class
// membership, not by the opening character.
func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

func isOpenBracket(c byte) bool {
	return c == '[' || c == '{'
}

func isCloseBracket(c byte) bool {
	return c == ']' || c == '}'
}

// isBooleanChar accepts the letters of "true" and "false".
func isBooleanChar(c byte) bool {
	switch c {
	case 't', 'r', 'u', 'e', 'f', 'a', 'l', 's':
		return true
	default:
		return false
	}
}

// isNullChar accepts the letters of "null".
func isNullChar(c byte) bool {
	switch c {
	case 'n', 'u', 'l':
		return true
	default:
		return false
	}
}

package notes

import "strings"

// ToggleLine flips the leading checkbox marker on the indexed line between
// "[ ]" and "[x]", leaving every other line byte-identical. The boolean
// reports whether anything changed: an out-of-range index or a line without a
// checkbox marker returns the content untouched.
func ToggleLine(content string, lineIndex int) (string, bool) {
	lines := strings.Split(content, "\n")
	if lineIndex < 0 || lineIndex >= len(lines) {
		return content, false
	}

	line := lines[lineIndex]
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "[ ]"):
		lines[lineIndex] = strings.Replace(line, "[ ]", "[x]", 1)
	case strings.HasPrefix(trimmed, "[x]"):
		lines[lineIndex] = strings.Replace(line, "[x]", "[ ]", 1)
	default:
		return content, false
	}

	return strings.Join(lines, "\n"), true
}

package notes

import (
	"regexp"
	"strings"
)

// classificationRule pairs a content predicate with the type it assigns.
// Rules are evaluated top to bottom and the first match wins, which makes the
// URL-before-todo precedence an explicit contract.
type classificationRule struct {
	applies func(content string) bool
	result  NoteType
}

var (
	// Absolute http(s) links or bare domain-like tokens such as "example.com".
	urlPattern = regexp.MustCompile(`(https?://\S+)|([A-Za-z0-9-]+\.[A-Za-z]{2,})`)

	// Any of these on the trimmed content marks a todo capture.
	todoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(todo|task):`),
		regexp.MustCompile(`^(- )?\[( ?|x)\]`),
		regexp.MustCompile(`(?i)^(do|complete|finish|remember to)`),
		regexp.MustCompile(`^\d+\.\s`),
		regexp.MustCompile(`^[-*•]\s`),
	}
)

var classificationRules = []classificationRule{
	{applies: containsURL, result: NoteTypeURL},
	{applies: startsLikeTodo, result: NoteTypeTodo},
}

func containsURL(content string) bool {
	return urlPattern.MatchString(content)
}

func startsLikeTodo(content string) bool {
	trimmed := strings.TrimSpace(content)
	for _, pattern := range todoPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// Classify derives the type tag for raw captured content. Content that looks
// like both a link and a checklist classifies as a URL; anything unmatched
// falls back to a plain note.
func Classify(content string) NoteType {
	for _, rule := range classificationRules {
		if rule.applies(content) {
			return rule.result
		}
	}
	return NoteTypeNote
}

var (
	checkboxPrefix    = regexp.MustCompile(`^\[( ?|x)\]`)
	listMarkerPrefix  = regexp.MustCompile(`^(\d+\.\s|[-*•]\s)`)
	todoKeywordPrefix = regexp.MustCompile(`(?i)^(todo|task):\s*`)
)

// FormatForStorage normalizes todo content into checkbox lines before it is
// persisted. Lines that already start with a checkbox are kept verbatim, list
// markers and todo/task prefixes become "[ ] ", remaining non-blank lines are
// prefixed, and blank lines pass through. Running the function on its own
// output changes nothing. Content of any other type is returned unchanged.
func FormatForStorage(content string, noteType NoteType) string {
	if noteType != NoteTypeTodo {
		return content
	}

	lines := strings.Split(content, "\n")
	for index, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			// blank separator line
		case checkboxPrefix.MatchString(trimmed):
			// already checkboxed
		case listMarkerPrefix.MatchString(trimmed):
			lines[index] = listMarkerPrefix.ReplaceAllString(trimmed, "[ ] ")
		case todoKeywordPrefix.MatchString(trimmed):
			lines[index] = todoKeywordPrefix.ReplaceAllString(trimmed, "[ ] ")
		default:
			lines[index] = "[ ] " + trimmed
		}
	}

	return strings.Join(lines, "\n")
}

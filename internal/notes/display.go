package notes

// DefaultTruncateLength bounds list previews before the UI expands the note.
const DefaultTruncateLength = 150

// TruncatedText carries a preview cut and whether the cut dropped anything.
type TruncatedText struct {
	Text        string
	IsTruncated bool
}

// Truncate cuts text to at most maxLength characters, appending an ellipsis
// when something was dropped. The cut counts characters, not words.
func Truncate(text string, maxLength int) TruncatedText {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return TruncatedText{Text: text}
	}
	return TruncatedText{
		Text:        string(runes[:maxLength]) + "...",
		IsTruncated: true,
	}
}

// TypeIcon returns the glyph shown next to a note of the given type.
// Unrecognized values render as plain notes.
func TypeIcon(noteType NoteType) string {
	switch noteType {
	case NoteTypeURL:
		return "🔗"
	case NoteTypeTodo:
		return "✓"
	default:
		return "📝"
	}
}

// TypeBadgeClass returns the style classes for a note's type badge.
func TypeBadgeClass(noteType NoteType) string {
	switch noteType {
	case NoteTypeURL:
		return "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200"
	case NoteTypeTodo:
		return "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-200"
	default:
		return "bg-gray-100 text-gray-800 dark:bg-gray-800 dark:text-gray-200"
	}
}

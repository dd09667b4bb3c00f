package domain

import "errors"

// -----------------------------------------------------------------------------
// Domain Errors
// These errors represent domain-level failures and are used by the progress
// service and storage backends to communicate domain-specific error conditions.
// -----------------------------------------------------------------------------

// Progress errors
var (
	ErrNegativePoints = errors.New("points amount must be non-negative")
	ErrInvalidScore   = errors.New("quiz score must be between 0 and 100")
)

// Flashcard errors
var (
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 100")
	ErrEmptyQuestion     = errors.New("flashcard question must not be empty")
)

// Note errors
var (
	ErrNoteNotFound = errors.New("note not found")
)

// Bookmark errors
var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

// Settings errors
var (
	ErrUnknownTheme        = errors.New("unknown theme")
	ErrUnknownFontSize     = errors.New("unknown font size")
	ErrUnknownLearningPath = errors.New("unknown learning path")
)

// General errors
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

package port

import "lingua/internal/domain"

// HistoryStore persists finished translations per document, newest first.
type HistoryStore interface {
	// Push records resp for docID and keeps at most limit entries.
	Push(docID string, resp domain.TranslationResponse, limit int) error

	// List returns the entries for docID, newest first.
	List(docID string) ([]domain.TranslationResponse, error)

	// Clear removes every entry for docID.
	Clear(docID string) error

	// Documents returns the IDs that have history.
	Documents() ([]string, error)

	Close() error
}

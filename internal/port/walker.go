package port

import "lingua/internal/domain"

type PassageWalker interface {
	Walk(root string) ([]domain.Passage, error)
}

type PassageReader interface {
	ReadPassage(path string) (string, error)
}

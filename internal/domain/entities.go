package domain

import "time"

// ChunkPair aligns one source lexical item with its rendering in the target language.
type ChunkPair struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
}

type PartKind string

const (
	PartText PartKind = "text"
	PartWord PartKind = "word"
)

// LiteralPart is one segment of a tokenized literal translation.
// SourceWord is set only for PartWord.
type LiteralPart struct {
	Type       PartKind `json:"type"`
	Content    string   `json:"content"`
	SourceWord string   `json:"sourceWord,omitempty"`
}

func TextPart(content string) LiteralPart {
	return LiteralPart{Type: PartText, Content: content}
}

func WordPart(content, sourceWord string) LiteralPart {
	return LiteralPart{Type: PartWord, Content: content, SourceWord: sourceWord}
}

// PartialTranslation is the best-effort snapshot of an in-progress response.
// A nil translation field means "no value yet".
type PartialTranslation struct {
	Original           string        `json:"original"`
	NaturalTranslation *string       `json:"naturalTranslation"`
	DirectTranslation  *string       `json:"directTranslation"`
	LiteralParts       []LiteralPart `json:"literalParts"`
	ChunkPairs         []ChunkPair   `json:"chunkPairs"`
	IsComplete         bool          `json:"isComplete"`
}

// TranslationResponse is the finalized form of a PartialTranslation.
type TranslationResponse struct {
	Original           string        `json:"original"`
	NaturalTranslation string        `json:"naturalTranslation"`
	DirectTranslation  string        `json:"directTranslation"`
	ChunkPairs         []ChunkPair   `json:"chunkPairs"`
	LiteralParts       []LiteralPart `json:"literalParts"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// Provenance identifies which translation a located chunk came from.
// Zero is the current translation, k > 0 the k-th most recent historical one.
type Provenance int

const ProvenanceCurrent Provenance = 0

func (p Provenance) IsCurrent() bool {
	return p == ProvenanceCurrent
}

// LocatedChunk is a chunk resolved to byte offsets within one paragraph.
// Chunk is sliced from the paragraph and keeps its casing; Query is the text
// that was searched for.
type LocatedChunk struct {
	Chunk       string     `json:"chunk"`
	Query       string     `json:"query"`
	ChunkIndex  int        `json:"chunkIndex"`
	Position    int        `json:"absolutePosition"`
	End         int        `json:"end"`
	Translation string     `json:"translation,omitempty"`
	Provenance  Provenance `json:"provenance"`
	Weight      float64    `json:"weight"`
}

// DragPayload is the record exchanged between a drag source and a drop target.
type DragPayload struct {
	TargetWord  string `json:"targetWord"`
	Translation string `json:"translation"`
}

type Rating int

const (
	RatingAgain Rating = 1
	RatingHard  Rating = 2
	RatingGood  Rating = 3
	RatingEasy  Rating = 4
)

type CardState int

const (
	CardNew        CardState = 0
	CardLearning   CardState = 1
	CardReview     CardState = 2
	CardRelearning CardState = 3
)

type ReviewLog struct {
	Rating        Rating    `json:"rating"`
	State         CardState `json:"state"`
	Due           int64     `json:"due"`
	Stability     float64   `json:"stability"`
	Difficulty    float64   `json:"difficulty"`
	ElapsedDays   int       `json:"elapsed_days"`
	ScheduledDays int       `json:"scheduled_days"`
	Review        int64     `json:"review"`
}

// Flashcard carries FSRS scheduling fields. Timestamps are unix milliseconds.
type Flashcard struct {
	ID          string `json:"id"`
	TargetWord  string `json:"targetWord"`
	Translation string `json:"translation"`
	CreatedAt   int64  `json:"createdAt"`

	Due           int64       `json:"due"`
	Stability     float64     `json:"stability"`
	Difficulty    float64     `json:"difficulty"`
	ElapsedDays   int         `json:"elapsed_days"`
	ScheduledDays int         `json:"scheduled_days"`
	Reps          int         `json:"reps"`
	Lapses        int         `json:"lapses"`
	State         CardState   `json:"state"`
	LastReview    int64       `json:"last_review"`
	ReviewLog     []ReviewLog `json:"review_log"`
}

type DraftFlashcard struct {
	TargetWord  string `json:"targetWord"`
	Translation string `json:"translation"`
}

// Passage is a readable text file discovered on disk.
type Passage struct {
	ID      string
	Path    string
	ModTime time.Time
	Size    int64
}

// Paragraph is one blank-line separated block of a passage.
type Paragraph struct {
	Index  int
	Offset int
	Text   string
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/internal/adapter/align"
	"lingua/internal/adapter/llm"
	"lingua/internal/adapter/memstore"
	"lingua/internal/domain"
	"lingua/internal/usecase"
)

const recorded = "<idio>The black cat</idio>\n<words>\n<w=chat>cat</w>\n<w=noir>black</w>\n</words>\n<literal>The <w=noir>black</w> <w=chat>cat</w></literal>"

func newTestRouter(t *testing.T) (*gin.Engine, *memstore.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memstore.NewMemoryStore()
	streamer := llm.NewReplayStreamer(recorded, 8, 0)
	router := NewRouter(RouterDeps{
		Translate: NewTranslateHandler(streamer, store, 10, nil),
		Highlight: NewHighlightHandler(usecase.NewHighlightUseCase(store, align.DefaultMergeOptions())),
		Cards:     NewFlashcardHandler(),
		History:   NewHistoryHandler(store),
	})
	return router, store
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestTranslate_StreamsRawTextAndRecordsHistory(t *testing.T) {
	router, store := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/translate", `{"text":"Le chat noir","docId":"doc"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, recorded, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	items, err := store.List("doc")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Le chat noir", items[0].Original)
	assert.Equal(t, "The black cat", items[0].NaturalTranslation)
}

func TestTranslate_RequiresText(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, body := range []string{`{}`, `{"text":"   "}`, `not json`} {
		w := do(router, http.MethodPost, "/api/translate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"Text is required"}`, w.Body.String())
	}
}

func TestParse(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(parseRequest{Text: recorded[:50], Original: "Le chat noir"})
	w := do(router, http.MethodPost, "/api/parse", string(body))
	require.Equal(t, http.StatusOK, w.Code)

	var p domain.PartialTranslation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Le chat noir", p.Original)
	require.NotNil(t, p.NaturalTranslation)
	assert.Equal(t, "The black cat", *p.NaturalTranslation)
	assert.False(t, p.IsComplete)
	assert.NotNil(t, p.LiteralParts)
}

func TestHighlight(t *testing.T) {
	router, store := newTestRouter(t)
	require.NoError(t, store.Push("doc", domain.TranslationResponse{
		Original:   "Le Chat noir",
		ChunkPairs: []domain.ChunkPair{{Original: "noir", Translation: "black"}},
	}, 10))

	w := do(router, http.MethodPost, "/api/highlight", `{
		"docId": "doc",
		"paragraph": "Le Chat noir dort.",
		"current": {"original": "Chat", "chunkPairs": [{"original": "chat", "translation": "cat"}]}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Chunks []struct {
			Chunk       string  `json:"chunk"`
			Position    int     `json:"absolutePosition"`
			Provenance  int     `json:"provenance"`
			Weight      float64 `json:"weight"`
			Color       string  `json:"color"`
			DragPayload string  `json:"dragPayload"`
		} `json:"chunks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Chunks, 2)

	assert.Equal(t, "Chat", resp.Chunks[0].Chunk)
	assert.Equal(t, 3, resp.Chunks[0].Position)
	assert.Equal(t, 0, resp.Chunks[0].Provenance)
	assert.Equal(t, "rgba(139, 92, 246, 1)", resp.Chunks[0].Color)
	assert.JSONEq(t, `{"targetWord":"Chat","translation":"cat"}`, resp.Chunks[0].DragPayload)

	assert.Equal(t, "noir", resp.Chunks[1].Chunk)
	assert.Equal(t, 1, resp.Chunks[1].Provenance)
	assert.Equal(t, "rgba(139, 92, 246, 0.5)", resp.Chunks[1].Color)
}

func TestFlashcards(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/flashcards", `{"targetWord":"Chat","translation":"cat"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var card domain.Flashcard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "Chat", card.TargetWord)
	assert.Equal(t, 5.0, card.Difficulty)
	assert.Equal(t, card.CreatedAt, card.Due)

	w = do(router, http.MethodPost, "/api/flashcards", `{"targetWord":"Chat"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/flashcards/drafts", `{"pairs":[{"original":"chat","translation":"cat"},{"original":"Chat","translation":"x"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"drafts":[{"targetWord":"chat","translation":"cat"}]}`, w.Body.String())
}

func TestHistoryEndpoints(t *testing.T) {
	router, store := newTestRouter(t)
	require.NoError(t, store.Push("doc", domain.TranslationResponse{Original: "x"}, 10))

	w := do(router, http.MethodGet, "/api/history/doc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"original":"x"`)

	w = do(router, http.MethodDelete, "/api/history/doc", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodGet, "/api/history/doc", "")
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestGzip_SkipsTranslateStream(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/history/doc", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	req = httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(`{"text":"Le chat noir"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, recorded, w.Body.String())
}

func TestTranslateHandler_SessionsBounded(t *testing.T) {
	h := NewTranslateHandler(llm.NewReplayStreamer(recorded, 8, 0), memstore.NewMemoryStore(), 10, nil)
	h.sessions = newSessionCache(2)

	a := h.session("a")
	assert.Same(t, a, h.session("a"))
	h.session("b")
	h.session("c")

	assert.Equal(t, 2, h.sessions.Len())
	assert.False(t, h.sessions.Contains("a"))
	assert.NotSame(t, a, h.session("a"))
	assert.NotSame(t, h.session(""), h.session(""))
	assert.Equal(t, 2, h.sessions.Len())
}

package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"lingua/internal/domain"
	"lingua/internal/port"
)

var (
	bucketHistory   = []byte("history")
	bucketDocuments = []byte("documents")
	bucketMeta      = []byte("meta")
)

// BoltStore persists translation history per document. Each document owns a
// nested bucket under "history" whose keys are increasing sequence numbers,
// so a reverse cursor walk yields entries newest first.
type BoltStore struct {
	db *bbolt.DB
}

var _ port.HistoryStore = (*BoltStore)(nil)

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketHistory, bucketDocuments, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

type documentMeta struct {
	Path      string `json:"path"`
	UpdatedAt int64  `json:"updated_at"`
}

// Document describes a passage that has translation history.
type Document struct {
	ID        string
	Path      string
	UpdatedAt time.Time
	Entries   int
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func (s *BoltStore) Push(docID string, resp domain.TranslationResponse, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("history limit must be positive, got %d", limit)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode translation: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.Bucket(bucketHistory).CreateBucketIfNotExists([]byte(docID))
		if err != nil {
			return fmt.Errorf("failed to create history bucket: %w", err)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(seqKey(seq), data); err != nil {
			return err
		}

		var keys [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys[:max(0, len(keys)-limit)] {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		return touchDocument(tx, docID, "", resp.CreatedAt)
	})
}

func (s *BoltStore) List(docID string) ([]domain.TranslationResponse, error) {
	items := []domain.TranslationResponse{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketHistory).Bucket([]byte(docID))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var resp domain.TranslationResponse
			if err := json.Unmarshal(v, &resp); err != nil {
				return fmt.Errorf("failed to decode history entry: %w", err)
			}
			items = append(items, resp)
		}
		return nil
	})
	return items, err
}

func (s *BoltStore) Clear(docID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketHistory).DeleteBucket([]byte(docID)); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		return tx.Bucket(bucketDocuments).Delete([]byte(docID))
	})
}

func (s *BoltStore) Documents() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketHistory).ForEach(func(k, v []byte) error {
			if v == nil {
				ids = append(ids, string(k))
			}
			return nil
		})
	})
	sort.Strings(ids)
	return ids, err
}

// SetDocumentPath records the passage path behind docID.
func (s *BoltStore) SetDocumentPath(docID, path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return touchDocument(tx, docID, path, time.Time{})
	})
}

// DescribeDocuments lists documents with history, most recently updated first.
func (s *BoltStore) DescribeDocuments() ([]Document, error) {
	var docs []Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		history := tx.Bucket(bucketHistory)
		meta := tx.Bucket(bucketDocuments)
		return history.ForEach(func(k, v []byte) error {
			if v != nil {
				return nil
			}
			doc := Document{ID: string(k), Entries: countKeys(history.Bucket(k))}
			if data := meta.Get(k); data != nil {
				var m documentMeta
				if err := json.Unmarshal(data, &m); err != nil {
					return err
				}
				doc.Path = m.Path
				doc.UpdatedAt = time.UnixMilli(m.UpdatedAt)
			}
			docs = append(docs, doc)
			return nil
		})
	})
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].UpdatedAt.After(docs[j].UpdatedAt) })
	return docs, err
}

func countKeys(b *bbolt.Bucket) int {
	n := 0
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		n++
	}
	return n
}

func touchDocument(tx *bbolt.Tx, docID, path string, at time.Time) error {
	b := tx.Bucket(bucketDocuments)
	var m documentMeta
	if data := b.Get([]byte(docID)); data != nil {
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
	}
	if path != "" {
		m.Path = path
	}
	if !at.IsZero() {
		m.UpdatedAt = at.UnixMilli()
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return b.Put([]byte(docID), data)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

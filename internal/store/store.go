// Package store persists completed audit reports as standalone JSON
// documents and maintains the cumulative history index. The index is the
// single source of truth for which reports exist; individual documents are
// addressed only through it.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/report"
)

const (
	auditsSubdir  = "audits"
	indexFilename = "index.json"
	indexVersion  = "1.0"
)

var reUnsafe = regexp.MustCompile(`[^\w\-.]`)

// DocumentCipher optionally post-processes a fully built report JSON
// document at rest and reverses the transform on load.
type DocumentCipher interface {
	EncryptDocument(doc []byte) ([]byte, error)
	DecryptDocument(doc []byte) ([]byte, error)
}

// Store owns all reads and writes under the data directory. The index
// read-modify-write on Save is serialized by a mutex; multi-process
// concurrency is out of scope.
type Store struct {
	dataDir string
	logger  *slog.Logger
	cipher  DocumentCipher
	now     func() time.Time

	mu sync.Mutex
}

func New(dataDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if dataDir == "" {
		dataDir = "data"
	}
	return &Store{dataDir: dataDir, logger: logger, now: time.Now}
}

// WithCipher enables at-rest encryption of saved report documents.
func (s *Store) WithCipher(c DocumentCipher) *Store {
	s.cipher = c
	return s
}

// WithClock replaces the timestamp source. Used by tests.
func (s *Store) WithClock(fn func() time.Time) *Store {
	s.now = fn
	return s
}

// IndexPath returns the well-known location of the history index.
func (s *Store) IndexPath() string {
	return filepath.Join(s.dataDir, indexFilename)
}

// Save writes the report as a uniquely named document and appends one entry
// to the history index. Returns the storage key (the report's json_file path
// as recorded in the index).
func (s *Store) Save(rep *report.AuditReport) (string, error) {
	ts := s.now()
	name := fmt.Sprintf("audit_%s_%s.json",
		reUnsafe.ReplaceAllString(rep.Metadata.Filename, "_"),
		ts.Format("20060102_150405"),
	)
	dir := filepath.Join(s.dataDir, auditsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create audits dir: %w", err)
	}
	path := filepath.Join(dir, name)

	doc, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if s.cipher != nil {
		doc, err = s.cipher.EncryptDocument(doc)
		if err != nil {
			return "", fmt.Errorf("encrypt report: %w", err)
		}
	}
	if err := writeFileAtomic(path, doc); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	if err := s.appendToIndex(rep, path, ts); err != nil {
		return "", err
	}

	s.logger.Info("store.saved",
		"json_file", path,
		"final_score", rep.Scores.FinalScore,
		"grade", rep.Scores.Grade,
	)
	return path, nil
}

// appendToIndex performs the locked read-modify-write that keeps ids
// strictly increasing and total_audits consistent.
func (s *Store) appendToIndex(rep *report.AuditReport, jsonFile string, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.readIndex()
	if err != nil {
		return err
	}
	if len(idx.Audits) == 0 && idx.Metadata.CreatedDate == "" {
		idx.Metadata.CreatedDate = ts.Format(time.RFC3339)
		idx.Metadata.Version = indexVersion
	}

	idx.Audits = append(idx.Audits, report.HistoryEntry{
		ID:         len(idx.Audits) + 1,
		Filename:   rep.Metadata.Filename,
		AuditDate:  rep.Metadata.AuditDate,
		FinalScore: rep.Scores.FinalScore,
		Grade:      rep.Scores.Grade,
		JSONFile:   jsonFile,
		WordCount:  rep.Metadata.WordCount,
	})
	idx.Metadata.TotalAudits = len(idx.Audits)
	idx.Metadata.LastUpdated = ts.Format(time.RFC3339)

	doc, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := writeFileAtomic(s.IndexPath(), doc); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Load reads a stored report by its storage key. A key that does not resolve
// to an existing document fails with common.ErrNotFound.
func (s *Store) Load(key string) (*report.AuditReport, error) {
	raw, err := os.ReadFile(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: report %q", common.ErrNotFound, key)
		}
		return nil, fmt.Errorf("read report %q: %w", key, err)
	}
	if s.cipher != nil {
		raw, err = s.cipher.DecryptDocument(raw)
		if err != nil {
			return nil, fmt.Errorf("decrypt report %q: %w", key, err)
		}
	}
	var rep report.AuditReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, fmt.Errorf("decode report %q: %w", key, err)
	}
	return &rep, nil
}

// History returns the full index. A missing index file is not an error: it
// reads as an empty index.
func (s *Store) History() (*report.HistoryIndex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readIndex()
}

func (s *Store) readIndex() (*report.HistoryIndex, error) {
	raw, err := os.ReadFile(s.IndexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &report.HistoryIndex{
				Metadata: report.HistoryMetadata{TotalAudits: 0},
				Audits:   []report.HistoryEntry{},
			}, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}
	var idx report.HistoryIndex
	if err := json.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	if idx.Audits == nil {
		idx.Audits = []report.HistoryEntry{}
	}
	return &idx, nil
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it into place, so readers never observe a torn document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

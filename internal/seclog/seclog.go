// Package seclog maintains the append-only security event log: one CSV
// row per authentication or admin event, never mutated or pruned.
package seclog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

const timeLayout = "2006-01-02 15:04:05"

var header = []string{"username", "status", "timestamp"}

// Entry is one recorded security event.
type Entry struct {
	Username  string `json:"username"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Logger appends entries to a CSV file and mirrors them to the
// application log.
type Logger struct {
	mu   sync.Mutex
	path string
	zlog *zap.SugaredLogger
}

func New(path string, zlog *zap.SugaredLogger) *Logger {
	if zlog == nil {
		zlog = zap.NewNop().Sugar()
	}
	return &Logger{path: path, zlog: zlog}
}

// Record appends one event. Logging must never fail a request, so errors
// are reported to the application log and otherwise swallowed.
func (l *Logger) Record(username, status string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.append(username, status); err != nil {
		l.zlog.Warnw("security log append failed", "error", err, "username", username, "status", status)
		return
	}
	l.zlog.Infow("security event", "username", username, "status", status)
}

func (l *Logger) append(username, status string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	writeHeader := false
	if info, err := os.Stat(l.path); os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		writeHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open security log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write([]string{username, status, time.Now().Format(timeLayout)}); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Entries reads the full log back, oldest first.
func (l *Logger) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open security log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read security log: %w", err)
	}

	var entries []Entry
	for i, rec := range records {
		if i == 0 || len(rec) < 3 {
			continue // header or malformed row
		}
		entries = append(entries, Entry{Username: rec[0], Status: rec[1], Timestamp: rec[2]})
	}
	return entries, nil
}

// Package recorder captures widget sessions: moves stream into the SQLite
// repositories and into a compressed event log that replays can verify
// against the cube's state fingerprints.
package recorder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Event types appearing in session logs.
const (
	EventMove   = "move"
	EventFace   = "face"
	EventSolved = "solved"
)

// LogEvent is one line of a session log.
type LogEvent struct {
	ElapsedMs   int64  `json:"elapsed_ms"`
	Type        string `json:"type"`
	Notation    string `json:"notation,omitempty"`
	Face        int    `json:"face,omitempty"`
	Fingerprint uint64 `json:"fingerprint,string"`
}

// SessionLog is a fully-read session log.
type SessionLog struct {
	CreatedAt time.Time  `json:"created_at"`
	Events    []LogEvent `json:"-"`
}

// logHeader is the first line of every log file.
type logHeader struct {
	CreatedAt time.Time `json:"created_at"`
	Format    int       `json:"format"`
}

const logFormatVersion = 1

// Logger streams session events to a zstd-compressed JSONL file.
type Logger struct {
	file    *os.File
	zw      *zstd.Encoder
	bw      *bufio.Writer
	path    string
	started time.Time
}

// StartLogger creates a timestamped log file in dir.
func StartLogger(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	started := time.Now()
	path := filepath.Join(dir, started.Format("20060102-150405")+".jsonl.zst")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}

	l := &Logger{
		file:    f,
		zw:      zw,
		bw:      bufio.NewWriter(zw),
		path:    path,
		started: started,
	}
	if err := l.writeLine(logHeader{CreatedAt: started, Format: logFormatVersion}); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Log appends an event, stamping its elapsed offset.
func (l *Logger) Log(ev LogEvent) error {
	ev.ElapsedMs = time.Since(l.started).Milliseconds()
	return l.writeLine(ev)
}

func (l *Logger) writeLine(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode log event: %w", err)
	}
	if _, err := l.bw.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write log event: %w", err)
	}
	return nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if err := l.bw.Flush(); err != nil {
		return err
	}
	if err := l.zw.Close(); err != nil {
		return err
	}
	return l.file.Close()
}

// LoadLog reads a session log back from disk.
func LoadLog(path string) (*SessionLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	sc := bufio.NewScanner(zr)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read log header: %w", err)
		}
		return nil, fmt.Errorf("log is empty")
	}

	var hdr logHeader
	if err := json.Unmarshal(sc.Bytes(), &hdr); err != nil {
		return nil, fmt.Errorf("failed to parse log header: %w", err)
	}
	if hdr.Format != logFormatVersion {
		return nil, fmt.Errorf("unsupported log format %d", hdr.Format)
	}

	log := &SessionLog{CreatedAt: hdr.CreatedAt}
	for sc.Scan() {
		var ev LogEvent
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			return nil, fmt.Errorf("failed to parse log event: %w", err)
		}
		log.Events = append(log.Events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return log, nil
}

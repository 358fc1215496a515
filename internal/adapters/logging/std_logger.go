package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/andrescamacho/factoryplanner-go/internal/application/common"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/config"
)

var levelRank = map[string]int{
	common.LevelDebug: 0,
	common.LevelInfo:  1,
	common.LevelWarn:  2,
	common.LevelError: 3,
}

// StdLogger implements common.Logger on top of the standard log package
type StdLogger struct {
	mu       sync.Mutex
	out      *log.Logger
	minLevel int
	json     bool
	closer   io.Closer
}

// NewStdLogger writes records at or above level to w
func NewStdLogger(w io.Writer, level, format string) *StdLogger {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		rank = levelRank[common.LevelInfo]
	}
	asJSON := strings.EqualFold(format, "json")

	// JSON records stay one object per line, without the log timestamp prefix
	flags := log.LstdFlags
	if asJSON {
		flags = 0
	}

	return &StdLogger{
		out:      log.New(w, "", flags),
		minLevel: rank,
		json:     asJSON,
	}
}

// NewStdLoggerFromConfig opens the configured output
func NewStdLoggerFromConfig(cfg config.LoggingConfig) (*StdLogger, error) {
	switch cfg.Output {
	case "stdout":
		return NewStdLogger(os.Stdout, cfg.Level, cfg.Format), nil
	case "stderr", "":
		return NewStdLogger(os.Stderr, cfg.Level, cfg.Format), nil
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger := NewStdLogger(f, cfg.Level, cfg.Format)
		logger.closer = f
		return logger, nil
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}
}

// Log writes one record; records below the configured level are dropped
func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	level = strings.ToUpper(level)
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank[common.LevelInfo]
	}
	if rank < l.minLevel {
		return
	}

	var line string
	if l.json {
		line = formatJSON(level, message, metadata)
	} else {
		line = formatText(level, message, metadata)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Println(line)
}

// Close releases the log file, if any
func (l *StdLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func formatText(level, message string, metadata map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-5s %s", level, message)
	for _, key := range sortedKeys(metadata) {
		fmt.Fprintf(&b, " %s=%v", key, metadata[key])
	}
	return b.String()
}

func formatJSON(level, message string, metadata map[string]interface{}) string {
	record := make(map[string]interface{}, len(metadata)+2)
	for key, value := range metadata {
		record[key] = value
	}
	record["level"] = level
	record["message"] = message

	data, err := json.Marshal(record)
	if err != nil {
		return formatText(level, message, metadata)
	}
	return string(data)
}

func sortedKeys(metadata map[string]interface{}) []string {
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

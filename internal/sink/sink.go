// Package sink holds the places a finished session result can go.
package sink

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go-wave-brawler/internal/interfaces"

	"github.com/rs/zerolog"
)

// Log writes each result as one structured log line.
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log.With().Str("component", "result_sink").Logger()}
}

func (s *Log) Submit(ctx context.Context, result interfaces.SessionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info().
		Str("session", result.SessionID).
		Str("account", result.Account).
		Int("kills", result.Kills).
		Int("wave_reached", result.WaveReached).
		Int("currency_earned", result.CurrencyEarned).
		Time("ended_at", result.EndedAt).
		Msg("session result")
	return nil
}

// Memory keeps results in order; used by tests and the game-over screen.
type Memory struct {
	mu      sync.RWMutex
	results []interfaces.SessionResult
}

func NewMemory() *Memory {
	return &Memory{results: make([]interfaces.SessionResult, 0)}
}

func (s *Memory) Submit(ctx context.Context, result interfaces.SessionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *Memory) Results() []interfaces.SessionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]interfaces.SessionResult, len(s.results))
	copy(copied, s.results)
	return copied
}

// Last the most recent result, false if nothing was submitted.
func (s *Memory) Last() (interfaces.SessionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.results) == 0 {
		return interfaces.SessionResult{}, false
	}
	return s.results[len(s.results)-1], true
}

// JSONFile appends newline-delimited results to a file, one per session.
type JSONFile struct {
	mu   sync.Mutex
	path string
}

func NewJSONFile(path string) (*JSONFile, error) {
	if path == "" {
		return nil, errors.New("results path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create results dir %s: %w", dir, err)
		}
	}
	return &JSONFile{path: path}, nil
}

func (s *JSONFile) Submit(ctx context.Context, result interfaces.SessionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open results file %s: %w", s.path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	if err := json.NewEncoder(buf).Encode(result); err != nil {
		return fmt.Errorf("failed to encode session %s: %w", result.SessionID, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", s.path, err)
	}
	return nil
}

// ReadJSONFile loads every result stored by JSONFile.
func ReadJSONFile(path string) ([]interfaces.SessionResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file %s: %w", path, err)
	}
	defer f.Close()

	var results []interfaces.SessionResult
	dec := json.NewDecoder(f)
	for dec.More() {
		var r interfaces.SessionResult
		if err := dec.Decode(&r); err != nil {
			return results, fmt.Errorf("failed to decode results file %s: %w", path, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// Multi hands the result to every sink and joins their errors.
type Multi []interfaces.ResultSink

func (m Multi) Submit(ctx context.Context, result interfaces.SessionResult) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Submit(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

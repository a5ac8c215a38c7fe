// Package stats keeps the three persisted player stats: best score, last
// level played and total games started.
//
// Every operation is best-effort. When the backing store fails (or there is
// none) the error is logged and the value is served from an in-memory
// fallback, so callers never see a storage error.
package stats

import (
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/storage"
)

// Keys under which the stats are stored.
const (
	KeyBestScore  = "memoryGame_bestScore"
	KeyLastLevel  = "memoryGame_lastLevel"
	KeyTotalGames = "memoryGame_totalGames"
)

// Keys lists every stats key.
var Keys = []string{KeyBestScore, KeyLastLevel, KeyTotalGames}

// Stats reads and writes player stats.
type Stats struct {
	kv       storage.KV
	fallback *storage.Memory
	logger   *log.Logger

	mu sync.Mutex
	// local holds keys the store refused to write; their current value
	// lives only in fallback.
	local map[string]bool
}

// New creates a stats adapter over kv. A nil kv keeps stats in memory only.
func New(kv storage.KV, logger *log.Logger) *Stats {
	if logger == nil {
		logger = log.Default()
	}
	return &Stats{
		kv:       kv,
		fallback: storage.NewMemory(),
		logger:   logger,
		local:    make(map[string]bool),
	}
}

// BestScore returns the best score ever recorded, or 0.
func (s *Stats) BestScore() int {
	return s.getInt(KeyBestScore)
}

// SaveBestScore stores score if it beats the current best.
// Returns true only when a new best was recorded. Nothing is written when
// the current best could not be read, so a stored best is never lowered.
func (s *Stats) SaveBestScore(score int) bool {
	v, ok, current := s.lookup(KeyBestScore)
	if !current {
		s.logger.Warn("best score unreadable, not saving", "score", score)
		return false
	}
	if score <= s.parseInt(KeyBestScore, v, ok) {
		return false
	}
	if !s.set(KeyBestScore, strconv.Itoa(score)) {
		return false
	}
	s.logger.Info("new best score saved", "score", score)
	return true
}

// LastLevel returns the most recently selected level, if any.
func (s *Stats) LastLevel() (string, bool) {
	return s.get(KeyLastLevel)
}

// SaveLastLevel remembers the selected level.
func (s *Stats) SaveLastLevel(level string) {
	s.set(KeyLastLevel, level)
}

// TotalGames returns how many games have been started.
func (s *Stats) TotalGames() int {
	return s.getInt(KeyTotalGames)
}

// IncrementGamesPlayed adds one to the games-started counter.
func (s *Stats) IncrementGamesPlayed() {
	s.set(KeyTotalGames, strconv.Itoa(s.TotalGames()+1))
}

// ClearAll removes every stored stat.
func (s *Stats) ClearAll() {
	//nolint:errcheck // Memory never fails
	s.fallback.Delete(Keys...)
	if s.kv == nil {
		return
	}
	if err := s.kv.Delete(Keys...); err != nil {
		s.logger.Error("error clearing stats", "error", err)
		s.markLocal(true, Keys...)
		return
	}
	s.markLocal(false, Keys...)
	s.logger.Info("all stats cleared")
}

// get reads key from the store, falling back to memory on failure.
func (s *Stats) get(key string) (string, bool) {
	v, ok, _ := s.lookup(key)
	return v, ok
}

// lookup reads key. current is false when the store could not be read and
// the value came from memory without memory being authoritative for key.
func (s *Stats) lookup(key string) (v string, ok, current bool) {
	if s.kv != nil && !s.isLocal(key) {
		stored, found, err := s.kv.Get(key)
		if err == nil {
			return stored, found, true
		}
		s.logger.Error("error loading stat", "key", key, "error", err)
		//nolint:errcheck // Memory never fails
		v, ok, _ = s.fallback.Get(key)
		return v, ok, false
	}
	//nolint:errcheck // Memory never fails
	v, ok, _ = s.fallback.Get(key)
	return v, ok, true
}

// set writes key to the store and to the memory copy.
// Returns false if the store rejected the write; key is then served from
// memory until a later write succeeds.
func (s *Stats) set(key, value string) bool {
	//nolint:errcheck // Memory never fails
	s.fallback.Set(key, value)
	if s.kv == nil {
		return true
	}
	if err := s.kv.Set(key, value); err != nil {
		s.logger.Error("error saving stat", "key", key, "error", err)
		s.markLocal(true, key)
		return false
	}
	s.markLocal(false, key)
	return true
}

func (s *Stats) isLocal(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.local[key]
}

func (s *Stats) markLocal(local bool, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		if local {
			s.local[key] = true
		} else {
			delete(s.local, key)
		}
	}
}

// getInt parses a decimal counter; missing or malformed values read as 0.
func (s *Stats) getInt(key string) int {
	v, ok := s.get(key)
	return s.parseInt(key, v, ok)
}

func (s *Stats) parseInt(key, v string, ok bool) int {
	if !ok || v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		s.logger.Warn("ignoring malformed stat", "key", key, "value", v)
		return 0
	}
	return n
}

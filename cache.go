package holdem

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// OddsCache persists preflop heads-up equity results keyed by the canonical
// [SortedHeadsUp]. The core accepts an implementation; it never chooses a
// database or file format for the caller. Mirrors the spec's
// create_schema/select/insert triple with an insert-or-skip policy: if a
// key already exists, Insert is a no-op.
type OddsCache interface {
	// CreateSchema prepares the cache for use (e.g. creating a table or
	// opening/truncating a backing file). Safe to call on an
	// already-prepared cache.
	CreateSchema() error
	// Select returns the stored result for key, and whether it was found.
	Select(key uint64) (Odds, bool, error)
	// Insert stores odds under key if and only if key is not already
	// present.
	Insert(key uint64, odds Odds) error
}

// MemoryOddsCache is an in-memory [OddsCache], safe for concurrent use. No
// pack example grounds a SQL driver import for this interface (none of the
// retrieved repositories use database/sql or an ORM), so the reference
// implementations here are a plain map and a flat binary file rather than a
// fabricated database dependency.
type MemoryOddsCache struct {
	mu sync.RWMutex
	m  map[uint64]Odds
}

// NewMemoryOddsCache creates an empty [MemoryOddsCache].
func NewMemoryOddsCache() *MemoryOddsCache {
	return &MemoryOddsCache{m: make(map[uint64]Odds)}
}

// CreateSchema satisfies [OddsCache]; a no-op for the in-memory backend.
func (c *MemoryOddsCache) CreateSchema() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = make(map[uint64]Odds)
	}
	return nil
}

// Select satisfies [OddsCache].
func (c *MemoryOddsCache) Select(key uint64) (Odds, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.m[key]
	return o, ok, nil
}

// Insert satisfies [OddsCache], applying the insert-or-skip policy.
func (c *MemoryOddsCache) Insert(key uint64, odds Odds) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[key]; ok {
		return nil
	}
	c.m[key] = odds
	return nil
}

// cacheRecordSize is the byte size of one on-disk record: key + 4 counts,
// all fixed-width, matching the HUP_RESULT schema in spec.md §6 (the four
// card indices are recoverable from the packed key).
const cacheRecordSize = 8 + 4*8

// FileOddsCache is a flat-file-backed [OddsCache]: an append-only log of
// fixed-width records, loaded fully into memory at [FileOddsCache.CreateSchema]
// and flushed incrementally on Insert. The host chooses the path (e.g. from
// an environment variable); this type never reads its own location from the
// environment.
type FileOddsCache struct {
	mu   sync.Mutex
	path string
	f    *os.File
	m    map[uint64]Odds
}

// NewFileOddsCache creates a [FileOddsCache] backed by the file at path.
// The file is not opened until [FileOddsCache.CreateSchema] is called.
func NewFileOddsCache(path string) *FileOddsCache {
	return &FileOddsCache{path: path}
}

// CreateSchema opens (creating if necessary) the backing file and loads any
// existing records into memory.
func (c *FileOddsCache) CreateSchema() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, err := os.OpenFile(c.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	c.f = f
	c.m = make(map[uint64]Odds)
	r := bufio.NewReader(f)
	buf := make([]byte, cacheRecordSize)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		key := binary.BigEndian.Uint64(buf[0:8])
		c.m[key] = Odds{
			HeroWins:    int(int64(binary.BigEndian.Uint64(buf[8:16]))),
			VillainWins: int(int64(binary.BigEndian.Uint64(buf[16:24]))),
			Splits:      int(int64(binary.BigEndian.Uint64(buf[24:32]))),
			Total:       int(int64(binary.BigEndian.Uint64(buf[32:40]))),
		}
	}
	logrus.WithFields(logrus.Fields{"path": c.path, "records": len(c.m)}).Debug("odds cache loaded")
	return nil
}

// Select satisfies [OddsCache].
func (c *FileOddsCache) Select(key uint64) (Odds, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.m[key]
	return o, ok, nil
}

// Insert satisfies [OddsCache], applying the insert-or-skip policy and
// appending the new record to the backing file.
func (c *FileOddsCache) Insert(key uint64, odds Odds) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[key]; ok {
		return nil
	}
	var buf [cacheRecordSize]byte
	binary.BigEndian.PutUint64(buf[0:8], key)
	binary.BigEndian.PutUint64(buf[8:16], uint64(int64(odds.HeroWins)))
	binary.BigEndian.PutUint64(buf[16:24], uint64(int64(odds.VillainWins)))
	binary.BigEndian.PutUint64(buf[24:32], uint64(int64(odds.Splits)))
	binary.BigEndian.PutUint64(buf[32:40], uint64(int64(odds.Total)))
	if _, err := c.f.Write(buf[:]); err != nil {
		return err
	}
	c.m[key] = odds
	return nil
}

// Close releases the backing file handle.
func (c *FileOddsCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.f == nil {
		return nil
	}
	return c.f.Close()
}

// EquityCached returns hu's equity, consulting cache first and, on a miss,
// computing it exactly and populating every member of hu's suit-isomorphic
// shift set with the insert-or-skip policy — one computation seeds the
// whole equivalence class.
func EquityCached(hu SortedHeadsUp, cache OddsCache, compute func(SortedHeadsUp) Odds) (Odds, error) {
	if o, ok, err := cache.Select(hu.Key()); err != nil {
		return Odds{}, err
	} else if ok {
		return o, nil
	}
	o := compute(hu)
	for _, shifted := range hu.Shifts() {
		if err := cache.Insert(shifted.Key(), o); err != nil {
			return Odds{}, err
		}
	}
	return o, nil
}

package corpus

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gnolang/tprop/formula"
)

type fileMetadata struct {
	Hash         string
	LastModified time.Time
}

// CacheEntry stores the verification results of one corpus file under
// one bases/checker selection.
type CacheEntry struct {
	Metadata     fileMetadata
	Options      string
	Results      []Result
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache persists verification results between runs, keyed by corpus
// file. An entry is dropped when the file content changes, when the
// bases or checker differ from the cached run, or when the entry
// outlives the maximum age.
type Cache struct {
	CacheDir string
	entries  map[string]CacheEntry
	mutex    sync.RWMutex
	maxAge   time.Duration
}

func init() {
	// Result holds formulas behind the Formula interface; gob needs the
	// concrete types registered up front.
	gob.Register(formula.Constant{})
	gob.Register(formula.Variable{})
	gob.Register(formula.Unary{})
	gob.Register(formula.Binary{})
}

func NewCache(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &Cache{
		CacheDir: cacheDir,
		entries:  make(map[string]CacheEntry),
		maxAge:   24 * time.Hour,
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}

	return cache, nil
}

func (c *Cache) load() error {
	cacheFile := filepath.Join(c.CacheDir, "verify_cache.gob")
	file, err := os.Open(cacheFile)
	if os.IsNotExist(err) {
		return nil // cache file doesn't exist yet. This is fine.
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}

	return nil
}

func (c *Cache) save() error {
	cacheFile := filepath.Join(c.CacheDir, "verify_cache.gob")
	file, err := os.Create(cacheFile)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}

	return nil
}

// Set records the verification results of one corpus file.
func (c *Cache) Set(path, options string, results []Result) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	metadata, err := getFileMetadata(path)
	if err != nil {
		return fmt.Errorf("failed to get file metadata: %w", err)
	}

	c.entries[path] = CacheEntry{
		Metadata:     metadata,
		Options:      options,
		Results:      results,
		CreatedAt:    time.Now(),
		LastAccessed: time.Now(),
	}

	return c.save()
}

// Get returns the cached results for a corpus file, if still valid.
func (c *Cache) Get(path, options string) ([]Result, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[path]
	if !exists {
		return nil, false
	}

	if c.isEntryInvalid(path, options, entry) {
		delete(c.entries, path)
		return nil, false
	}

	entry.LastAccessed = time.Now()
	c.entries[path] = entry

	return entry.Results, true
}

func (c *Cache) isEntryInvalid(path, options string, entry CacheEntry) bool {
	if entry.Options != options {
		return true
	}

	// too old
	if time.Since(entry.CreatedAt) > c.maxAge {
		return true
	}

	currentMetadata, err := getFileMetadata(path)
	if err != nil || currentMetadata != entry.Metadata {
		return true
	}

	return false
}

func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]CacheEntry)
	_ = c.save() // ignore error as this is a manual operation
}

// split partitions entries into cached results and entries that still
// need verification. All entries of a corpus file share its cache slot.
func (c *Cache) split(entries []Entry, options string) ([]Result, []Entry) {
	var cached []Result
	var pending []Entry
	hits := make(map[string]bool)
	misses := make(map[string]bool)
	for _, entry := range entries {
		if entry.Path == "" || misses[entry.Path] {
			pending = append(pending, entry)
			continue
		}
		if hits[entry.Path] {
			continue
		}
		if results, ok := c.Get(entry.Path, options); ok {
			hits[entry.Path] = true
			cached = append(cached, results...)
			continue
		}
		misses[entry.Path] = true
		pending = append(pending, entry)
	}
	return cached, pending
}

// store records fresh results grouped by corpus file. Failures are
// logged and skipped; a broken cache must not fail the verification.
func (c *Cache) store(logger *zap.Logger, options string, results []Result) {
	byPath := make(map[string][]Result)
	for _, r := range results {
		if r.Entry.Path == "" {
			continue
		}
		byPath[r.Entry.Path] = append(byPath[r.Entry.Path], r)
	}
	for path, pathResults := range byPath {
		if err := c.Set(path, options, pathResults); err != nil && logger != nil {
			logger.Warn("failed to cache verification results",
				zap.String("path", path),
				zap.Error(err))
		}
	}
}

func getFileMetadata(path string) (fileMetadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return fileMetadata{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return fileMetadata{}, fmt.Errorf("failed to calculate hash: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return fileMetadata{}, fmt.Errorf("failed to get file info: %w", err)
	}

	return fileMetadata{
		Hash:         fmt.Sprintf("%x", hash.Sum(nil)),
		LastModified: info.ModTime(),
	}, nil
}

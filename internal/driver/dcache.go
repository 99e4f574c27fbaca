package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sdml/internal/diag"
	"sdml/internal/project"
	"sdml/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результат анализа схемы по её content-хешу на диске.
// Неизменившийся файл не анализируется повторно: достаточно воспроизвести
// его диагностики. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiagPayload is one cached diagnostic. Spans are stored as byte offsets;
// FileIDs are not stable across runs and get re-bound on load.
type DiagPayload struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []NotePayload
}

type NotePayload struct {
	Message string
	Start   uint32
	End     uint32
}

// DiskPayload stores the cached analysis outcome for one schema file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path  string // путь на момент записи, только для отладки
	Clean bool   // анализ прошёл без ошибок
	Diags []DiagPayload
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "schemas".
	return filepath.Join(c.dir, "schemas", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename файла уже нет; ошибка здесь не важна
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// bagToDiskPayload converts a sorted diagnostics bag into its cacheable form.
func bagToDiskPayload(path string, bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Clean:  !bag.HasErrors(),
	}

	items := bag.Items()
	if len(items) == 0 {
		return payload
	}
	payload.Diags = make([]DiagPayload, len(items))
	for i, d := range items {
		dp := DiagPayload{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, note := range d.Notes {
			dp.Notes = append(dp.Notes, NotePayload{
				Message: note.Msg,
				Start:   note.Span.Start,
				End:     note.Span.End,
			})
		}
		payload.Diags[i] = dp
	}
	return payload
}

// diskPayloadToBag rebinds cached diagnostics to the freshly loaded file.
// Returns nil for payloads written by an older schema version.
func diskPayloadToBag(payload *DiskPayload, fileID source.FileID, maxDiagnostics int) *diag.Bag {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return nil
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, dp := range payload.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(dp.Severity),
			Code:     diag.Code(dp.Code),
			Message:  dp.Message,
			Primary:  source.Span{File: fileID, Start: dp.Start, End: dp.End},
		}
		for _, np := range dp.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: np.Start, End: np.End},
				Msg:  np.Message,
			})
		}
		bag.Add(d)
	}
	return bag
}

package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/cryptox"
	"github.com/carlosftapiap/arcsapp-sub001/internal/filex"
	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/dgraph-io/badger/v4"
)

const cachePrefix = "extract/v2/"

// Cache stores extraction results by content hash.
type Cache interface {
	Get(hash string) (Extraction, bool, error)
	Put(hash string, ex Extraction) error
}

// BadgerCache is a Cache backed by an embedded Badger database.
type BadgerCache struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadgerCache opens (creating if needed) a cache in dir. An empty dir
// opens an in-memory database.
func OpenBadgerCache(dir string, ttl time.Duration) (*BadgerCache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	if dir != "" {
		abs, err := filex.EnsureDir(dir)
		if err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(abs)
	}
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open extraction cache: %w", err)
	}
	return &BadgerCache{db: db, ttl: ttl}, nil
}

func (c *BadgerCache) Get(hash string) (Extraction, bool, error) {
	var ex Extraction
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(cachePrefix + hash))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ex)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Extraction{}, false, nil
	}
	if err != nil {
		return Extraction{}, false, err
	}
	return ex, true, nil
}

func (c *BadgerCache) Put(hash string, ex Extraction) error {
	val, err := json.Marshal(ex)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(cachePrefix+hash), val)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
}

func (c *BadgerCache) Close() error {
	return c.db.Close()
}

// Cached wraps an Extractor with a Cache. Only successful extractions are
// stored. Cache failures are logged and otherwise ignored.
//
// maxBytes is enforced before the lookup so a lowered ceiling also applies
// to bodies extracted earlier. Entries are keyed by content and declared
// format.
type Cached struct {
	next     Extractor
	cache    Cache
	maxBytes int64
	log      logging.Logger
}

func NewCached(next Extractor, cache Cache, maxBytes int64, log logging.Logger) *Cached {
	return &Cached{next: next, cache: cache, maxBytes: maxBytes, log: log.With("module", "extract")}
}

func cacheKey(in Input, body []byte) string {
	return cryptox.ContentHash(body) + "." + declaredFormat(in).String()
}

func (c *Cached) Extract(ctx context.Context, in Input, body []byte) (Extraction, error) {
	if c.maxBytes > 0 && int64(len(body)) > c.maxBytes {
		return Extraction{}, errs.Errorf(errs.DocumentTooLarge, "%d bytes, limit %d", len(body), c.maxBytes)
	}
	hash := cacheKey(in, body)

	if ex, ok, err := c.cache.Get(hash); err != nil {
		c.log.Warn(ctx, "extraction cache read failed", "document_id", in.DocumentID, "error", err)
	} else if ok {
		c.log.Debug(ctx, "extraction cache hit", "document_id", in.DocumentID)
		return ex, nil
	}

	ex, err := c.next.Extract(ctx, in, body)
	if err != nil {
		return Extraction{}, err
	}
	if err := c.cache.Put(hash, ex); err != nil {
		c.log.Warn(ctx, "extraction cache write failed", "document_id", in.DocumentID, "error", err)
	}
	return ex, nil
}

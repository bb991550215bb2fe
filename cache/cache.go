package cache

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/pebble"

	"github.com/hazelvis/Medium-Publisher-Logic/constants"
	"github.com/hazelvis/Medium-Publisher-Logic/logger"
)

type DbWrapper struct {
	Db *pebble.DB
}

func (db *DbWrapper) Close() error {
	return db.Db.Close()
}

func NewDb(path string) (*DbWrapper, error) {
	os.MkdirAll(path, constants.DEFAULT_PERMS)
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &DbWrapper{Db: db}, nil
}

func handleErr(err error, logMsg string) {
	logger.MainLogger.Fatalf("%s: %s", logMsg, err)
}

func handleCloserErr(closer io.Closer) {
	err := closer.Close()
	if err == nil {
		return
	}
	// Shouldn't happen but log it and exit(1) to avoid memory leaks
	handleErr(err, "Failed to close cache value")
}

func (db *DbWrapper) Get(key string) []byte {
	value, closer, err := db.Db.Get([]byte(key))
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil
		}
		handleErr(err, "Failed to get cache value") // will exit the program, hence no need to return
	}
	defer handleCloserErr(closer)

	// the value is only valid until the closer is closed
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return valueCopy
}

func (db *DbWrapper) Delete(key string) error {
	return db.Db.Delete([]byte(key), pebble.Sync)
}

func (db *DbWrapper) ResetDb() error {
	iter, err := db.Db.NewIter(nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	batch := db.Db.NewBatch()
	for iter.First(); iter.Valid(); iter.Next() {
		err = batch.Delete(iter.Key(), pebble.Sync)
		if err != nil {
			batch.Close()
			return err
		}
	}

	err = db.SetBatch(batch)
	if err != nil {
		batch.Close()
		return err
	}
	return nil
}

func (db *DbWrapper) SetBatch(batch *pebble.Batch) error {
	return db.Db.Apply(batch, pebble.Sync)
}

func (db *DbWrapper) Set(key string, value []byte) error {
	return db.Db.Set([]byte(key), value, pebble.Sync)
}

func (db *DbWrapper) SetJson(key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return db.Set(key, value)
}

func (db *DbWrapper) GetJson(key string, v any) error {
	value := db.Get(key)
	if value == nil {
		return pebble.ErrNotFound
	}
	return json.Unmarshal(value, v)
}

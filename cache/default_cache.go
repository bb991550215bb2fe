package cache

import (
	"path/filepath"

	"github.com/hazelvis/Medium-Publisher-Logic/iofuncs"
)

var (
	DEFAULT_PATH            = filepath.Join(iofuncs.APP_PATH, "cache")
	CacheDb      *DbWrapper = nil
)

func InitCache(path string) error {
	if path == "" {
		path = DEFAULT_PATH
	}

	db, err := NewDb(path)
	if err != nil {
		return err
	}
	CacheDb = db
	return nil
}

func Get(key string) []byte {
	if CacheDb == nil {
		return nil
	}
	return CacheDb.Get(key)
}

func Delete(key string) error {
	if CacheDb == nil {
		return nil
	}
	return CacheDb.Delete(key)
}

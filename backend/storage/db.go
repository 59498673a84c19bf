package storage

import (
	"github.com/fernandosanchezjr/godprng/utils"
	"go.etcd.io/bbolt"
	"path"
	"time"
)

const DBPath = "db"

func GetDBPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "data.db")
}

type DB struct {
	db *bbolt.DB
}

func Open(dbPath string) (*DB, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

package storage

import (
	"bytes"
	"encoding/gob"
	"errors"
	"github.com/fernandosanchezjr/godprng/analytics"
	"github.com/fernandosanchezjr/godprng/utils"
	"go.etcd.io/bbolt"
)

var ErrBucketNotFound = errors.New("bucket not found")

var reportsBucket = []byte("reports")

func GetSourceBucket(tx *bbolt.Tx, source string) (sourceBucket *bbolt.Bucket, err error) {
	if tx.Writable() {
		sourceBucket, err = tx.CreateBucketIfNotExists([]byte(source))
	} else {
		sourceBucket = tx.Bucket([]byte(source))
		if sourceBucket == nil {
			err = ErrBucketNotFound
		}
	}
	return
}

func GetChildBucket(tx *bbolt.Tx, parent *bbolt.Bucket, name []byte) (child *bbolt.Bucket, err error) {
	if tx.Writable() {
		child, err = parent.CreateBucketIfNotExists(name)
	} else {
		child = parent.Bucket(name)
		if child == nil {
			err = ErrBucketNotFound
		}
	}
	return
}

func getReportsBucket(tx *bbolt.Tx, source string) (*bbolt.Bucket, error) {
	sourceBucket, err := GetSourceBucket(tx, source)
	if err != nil {
		return nil, err
	}
	return GetChildBucket(tx, sourceBucket, reportsBucket)
}

func encodeReport(report *analytics.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeReport(raw []byte) (*analytics.Report, error) {
	var report analytics.Report
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (d *DB) WriteReport(report *analytics.Report) error {
	raw, err := encodeReport(report)
	if err != nil {
		return err
	}
	return d.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := getReportsBucket(tx, report.Source)
		if err != nil {
			return err
		}
		return bucket.Put(utils.TimeToBytes(report.Time), raw)
	})
}

// GetReports returns up to limit reports for source, newest first. A
// non-positive limit returns all of them.
func (d *DB) GetReports(source string, limit int) (reports []*analytics.Report, err error) {
	err = d.db.View(func(tx *bbolt.Tx) error {
		bucket, err := getReportsBucket(tx, source)
		if err != nil {
			return err
		}
		c := bucket.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(reports) >= limit {
				break
			}
			report, err := decodeReport(v)
			if err != nil {
				return err
			}
			reports = append(reports, report)
		}
		return nil
	})
	return
}

func (d *DB) GetLatestReport(source string) (*analytics.Report, error) {
	reports, err := d.GetReports(source, 1)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrBucketNotFound
	}
	return reports[0], nil
}

func (d *DB) GetKnownSources() (sources []string, err error) {
	err = d.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			sources = append(sources, string(name))
			return nil
		})
	})
	return
}

func (d *DB) ClearSource(source string) error {
	return d.db.Update(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket([]byte(source))
		if err == bbolt.ErrBucketNotFound {
			return ErrBucketNotFound
		}
		return err
	})
}

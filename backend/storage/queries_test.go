package storage

import (
	"errors"
	"github.com/fernandosanchezjr/godprng/analytics"
	"github.com/fernandosanchezjr/godprng/dprng"
	"path"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	db, err := Open(path.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_Reports(t *testing.T) {
	db := openTestDB(t)
	var seed uint64 = 42
	start := time.Now()
	for i := 0; i < 3; i++ {
		r := analytics.Analyze(dprng.New(seed + uint64(i)).NextBytes(1024))
		r.Source = "dprng"
		r.Seed = &seed
		r.Time = start.Add(time.Duration(i) * time.Second)
		if err := db.WriteReport(r); err != nil {
			t.Fatal(err)
		}
	}
	reports, err := db.GetReports("dprng", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports", len(reports))
	}
	if !reports[0].Time.Equal(start.Add(2*time.Second)) || !reports[2].Time.Equal(start) {
		t.Fatal("reports not ordered newest first")
	}
	if reports[0].Seed == nil || *reports[0].Seed != seed || reports[0].Count != 1024 {
		t.Fatalf("report fields lost: %+v", reports[0].Fields())
	}
	limited, _ := db.GetReports("dprng", 2)
	if len(limited) != 2 {
		t.Fatalf("limit ignored: %d", len(limited))
	}
	latest, err := db.GetLatestReport("dprng")
	if err != nil || !latest.Time.Equal(reports[0].Time) {
		t.Fatalf("latest: %v", err)
	}
}

func TestDB_MissingSource(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.GetReports("rand", 0); !errors.Is(err, ErrBucketNotFound) {
		t.Fatalf("expected ErrBucketNotFound, got %v", err)
	}
	if err := db.ClearSource("rand"); !errors.Is(err, ErrBucketNotFound) {
		t.Fatalf("expected ErrBucketNotFound, got %v", err)
	}
}

func TestDB_KnownSources(t *testing.T) {
	db := openTestDB(t)
	for _, name := range []string{"rand", "dprng"} {
		r := analytics.Analyze([]byte{1, 2, 3})
		r.Source = name
		if err := db.WriteReport(r); err != nil {
			t.Fatal(err)
		}
	}
	sources, err := db.GetKnownSources()
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 2 || sources[0] != "dprng" || sources[1] != "rand" {
		t.Fatalf("unexpected sources %v", sources)
	}
	if err := db.ClearSource("rand"); err != nil {
		t.Fatal(err)
	}
	if sources, _ = db.GetKnownSources(); len(sources) != 1 {
		t.Fatalf("clear failed: %v", sources)
	}
}

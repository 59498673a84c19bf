package governor

import (
	"errors"
	"github.com/fernandosanchezjr/godprng/backend/storage"
	"github.com/fernandosanchezjr/godprng/config"
	"github.com/fernandosanchezjr/godprng/sources"
	"io/ioutil"
	"os"
	"path"
	"testing"
)

func testConfig(t *testing.T) *config.Config {
	var seed uint64 = 42
	cfg := config.Default()
	cfg.Output = t.TempDir()
	cfg.Count = 4096
	cfg.Seed = &seed
	cfg.Sources = []string{sources.DPRNG, sources.Xoshiro, sources.Crypto}
	return cfg
}

func TestGovernor_Run(t *testing.T) {
	cfg := testConfig(t)
	cfg.Charts = true
	db, err := storage.Open(path.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	reports, err := NewGovernor(cfg, db).Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports", len(reports))
	}
	for _, r := range reports {
		if r.Count != cfg.Count || r.Digest == "" {
			t.Fatalf("incomplete report %+v", r.Fields())
		}
		if (r.Seed != nil) != (r.Source != sources.Crypto) {
			t.Fatalf("%s: unexpected seed %v", r.Source, r.Seed)
		}
		for _, suffix := range []string{".bin", ".html"} {
			if _, err := os.Stat(path.Join(cfg.Output, "out-"+r.Source+suffix)); err != nil {
				t.Fatal(err)
			}
		}
		stored, err := db.GetLatestReport(r.Source)
		if err != nil || stored.Digest != r.Digest {
			t.Fatalf("%s not stored: %v", r.Source, err)
		}
	}
}

func TestGovernor_RunReproducible(t *testing.T) {
	cfg := testConfig(t)
	cfg.Mode = config.ModeBytes
	cfg.Sources = []string{sources.DPRNG}
	first, err := NewGovernor(cfg, nil).Run()
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewGovernor(cfg, nil).Run()
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Source != sources.DPRNGBytes || first[0].Digest != second[0].Digest {
		t.Fatalf("runs differ: %s %s", first[0].Digest, second[0].Digest)
	}
}

func TestGovernor_RunUnknownSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sources = []string{"mcrypt", sources.DPRNG}
	reports, err := NewGovernor(cfg, nil).Run()
	if !errors.Is(err, sources.ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
	if len(reports) != 1 || reports[0].Source != sources.DPRNG {
		t.Fatal("remaining sources should still run")
	}
}

func TestGovernor_StartStop(t *testing.T) {
	cfg := testConfig(t)
	g := NewGovernor(cfg, nil)
	if err := g.Start(""); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig without schedule, got %v", err)
	}
	cfg.Schedule = "not a schedule"
	if err := g.Start(""); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for bad schedule, got %v", err)
	}
	cfg.Schedule = "@every 1h"
	configPath := path.Join(t.TempDir(), "config.yaml")
	if err := g.Start(configPath); err != nil {
		t.Fatal(err)
	}
	g.Stop()
}

func TestGovernor_Reload(t *testing.T) {
	cfg := testConfig(t)
	g := NewGovernor(cfg, nil)
	configPath := path.Join(t.TempDir(), "config.yaml")
	if err := ioutil.WriteFile(configPath, []byte("count: 64\nsources: [rand]\n"), 0600); err != nil {
		t.Fatal(err)
	}
	g.Reload(configPath)
	if g.Config().Count != 64 || g.Config().Sources[0] != sources.MathRand {
		t.Fatalf("reload not applied: %+v", g.Config())
	}
	if err := ioutil.WriteFile(configPath, []byte("count: -1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	g.Reload(configPath)
	if g.Config().Count != 64 {
		t.Fatal("invalid config replaced the current one")
	}
}

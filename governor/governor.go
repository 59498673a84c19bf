// Package governor runs comparisons: every configured source is written to
// its output file, analyzed, stored and charted.
package governor

import (
	"fmt"
	"github.com/fernandosanchezjr/godprng/analytics"
	"github.com/fernandosanchezjr/godprng/backend/charting"
	"github.com/fernandosanchezjr/godprng/backend/storage"
	"github.com/fernandosanchezjr/godprng/config"
	"github.com/fernandosanchezjr/godprng/sink"
	"github.com/fernandosanchezjr/godprng/sources"
	"github.com/fernandosanchezjr/godprng/utils"
	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"os"
	"path"
	"strings"
	"sync"
	"time"
)

const OutputPath = "out"

type Governor struct {
	mtx     sync.Mutex
	runMtx  sync.Mutex
	config  *config.Config
	db      *storage.DB
	cron    *cron.Cron
	watcher *fsnotify.Watcher
}

// NewGovernor accepts a nil db, in which case reports are only logged.
func NewGovernor(cfg *config.Config, db *storage.DB) *Governor {
	return &Governor{config: cfg, db: db}
}

func (g *Governor) Config() *config.Config {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return g.config
}

func (g *Governor) SetConfig(cfg *config.Config) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	g.config = cfg
}

func (g *Governor) outputFolder(cfg *config.Config) (string, error) {
	if cfg.Output == "" {
		return utils.GetSubFolder(OutputPath), nil
	}
	folder, err := utils.ExpandPath(cfg.Output)
	if err != nil {
		return "", err
	}
	return folder, os.MkdirAll(folder, 0700)
}

// sourceName maps the generator to its byte-oriented variant in bytes mode.
func sourceName(cfg *config.Config, name string) string {
	if name == sources.DPRNG && cfg.Mode == config.ModeBytes {
		return sources.DPRNGBytes
	}
	return name
}

// Run performs one comparison with the current config. A failing source is
// logged and skipped; the first error is returned with the reports that succeeded.
func (g *Governor) Run() ([]*analytics.Report, error) {
	g.runMtx.Lock()
	defer g.runMtx.Unlock()
	cfg := g.Config()
	folder, err := g.outputFolder(cfg)
	if err != nil {
		return nil, err
	}
	var seed uint64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = utils.EntropySeed()
	}
	runTime := time.Now()
	log.WithFields(log.Fields{
		"folder":  folder,
		"bytes":   utils.ByteCount(cfg.Count),
		"sources": strings.Join(cfg.Sources, ","),
		"seed":    seed,
	}).Println("Starting comparison")
	var reports []*analytics.Report
	var firstErr error
	for _, name := range cfg.Sources {
		report, err := g.RunSource(cfg, sourceName(cfg, name), folder, seed, runTime)
		if err != nil {
			log.WithFields(log.Fields{"source": name, "error": err}).Error("Comparison failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		reports = append(reports, report)
	}
	return reports, firstErr
}

func (g *Governor) RunSource(
	cfg *config.Config,
	name string,
	folder string,
	seed uint64,
	runTime time.Time,
) (*analytics.Report, error) {
	src, err := sources.New(name, seed)
	if err != nil {
		return nil, err
	}
	result, err := sink.WriteFile(folder, src, cfg.Count)
	if err != nil {
		return nil, err
	}
	report, err := analytics.AnalyzeFile(result.Path)
	if err != nil {
		return nil, err
	}
	report.Source = name
	report.Time = runTime
	report.Digest = result.Digest
	if src.Deterministic() {
		reportSeed := seed
		report.Seed = &reportSeed
	}
	if g.db != nil {
		if err := g.db.WriteReport(report); err != nil {
			return nil, fmt.Errorf("storing %s report: %w", name, err)
		}
	}
	if cfg.Charts {
		chartPath := path.Join(folder, strings.TrimSuffix(sink.FileName(name), ".bin")+".html")
		if err := charting.WriteHistogramFile(chartPath, report); err != nil {
			return nil, err
		}
	}
	log.WithFields(report.Fields()).WithFields(log.Fields{
		"path": result.Path,
		"rate": utils.ByteCount(result.Count).Rate(result.Elapsed.Seconds()),
	}).Println("Comparison")
	return report, nil
}

func (g *Governor) scheduledRun() {
	if _, err := g.Run(); err != nil {
		log.WithError(err).Warn("Scheduled comparison finished with errors")
	}
}

// Reload replaces the config from configPath, keeping the old one on error.
func (g *Governor) Reload(configPath string) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		log.WithError(err).Error("Config reload failed")
		return
	}
	g.SetConfig(cfg)
	log.WithField("path", configPath).Println("Config reloaded")
}

// Start schedules runs per the config's cron spec and reloads the config when
// configPath changes. An empty configPath disables reloading.
func (g *Governor) Start(configPath string) error {
	cfg := g.Config()
	if cfg.Schedule == "" {
		return fmt.Errorf("%w: no schedule", config.ErrInvalidConfig)
	}
	g.cron = cron.New()
	if _, err := g.cron.AddFunc(cfg.Schedule, g.scheduledRun); err != nil {
		g.cron = nil
		return fmt.Errorf("%w: schedule %q: %v", config.ErrInvalidConfig, cfg.Schedule, err)
	}
	if configPath != "" {
		watcher, err := utils.NewFileWatcher(configPath, func() { g.Reload(configPath) })
		if err != nil {
			log.WithError(err).Warn("Config watcher unavailable")
		} else {
			g.watcher = watcher
		}
	}
	g.cron.Start()
	log.WithField("schedule", cfg.Schedule).Println("Comparison scheduled")
	return nil
}

func (g *Governor) Stop() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	if g.cron != nil {
		<-g.cron.Stop().Done()
		g.cron = nil
	}
}

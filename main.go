package main

import (
	"flag"
	"github.com/fernandosanchezjr/godprng/backend/charting"
	"github.com/fernandosanchezjr/godprng/backend/storage"
	"github.com/fernandosanchezjr/godprng/config"
	"github.com/fernandosanchezjr/godprng/governor"
	"github.com/fernandosanchezjr/godprng/logging"
	"github.com/fernandosanchezjr/godprng/utils"
	log "github.com/sirupsen/logrus"
	"os"
	"runtime/pprof"
	"runtime/trace"
)

var cpuProfile bool
var tracing bool
var logLevel string

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&tracing, "trace", tracing, "enable tracing")
	flag.StringVar(&logLevel, "log-level", "info", "log level")
}

func main() {
	flag.Parse()
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetupLogger(level)
	if cpuProfile {
		f, err := os.Create("godprng.prof")
		if err != nil {
			log.Fatal(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	if tracing {
		f, err := os.Create("godprng.trace")
		if err != nil {
			log.Fatal(err)
		}
		if err := trace.Start(f); err != nil {
			log.Fatal(err)
		}
		defer trace.Stop()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	dbPath := storage.GetDBPath()
	if cfg.DBPath != "" {
		if dbPath, err = utils.ExpandPath(cfg.DBPath); err != nil {
			log.Fatal(err)
		}
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		log.WithFields(log.Fields{"error": err, "path": dbPath}).Fatal("Failed to open report DB")
	}
	defer db.Close()
	gov := governor.NewGovernor(cfg, db)
	if _, err := gov.Run(); err != nil {
		log.WithError(err).Error("Comparison finished with errors")
	}
	if cfg.Schedule == "" {
		return
	}
	if cfg.ServerAddress != "" {
		cs := charting.NewService(db)
		if err := cs.Start(cfg.ServerAddress); err != nil {
			log.WithError(err).Fatal("Failed to start chart server")
		}
		defer cs.Stop()
	}
	if err := gov.Start(config.Path()); err != nil {
		log.WithError(err).Fatal("Failed to schedule comparisons")
	}
	utils.Wait()
	gov.Stop()
}

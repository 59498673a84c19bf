package main

import (
	"flag"
	"github.com/fernandosanchezjr/godprng/backend/charting"
	"github.com/fernandosanchezjr/godprng/backend/storage"
	"github.com/fernandosanchezjr/godprng/config"
	"github.com/fernandosanchezjr/godprng/logging"
	"github.com/fernandosanchezjr/godprng/utils"
	log "github.com/sirupsen/logrus"
)

var clearSource string

func init() {
	flag.StringVar(&clearSource, "clear-source", clearSource, "delete all stored reports for a source and exit")
}

func main() {
	flag.Parse()
	logging.SetupLogger(log.DebugLevel)
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
	if clearSource != "" {
		if err := db.ClearSource(clearSource); err != nil {
			log.WithError(err).Error("Could not clear reports")
		} else {
			log.WithField("source", clearSource).Println("Cleared reports")
		}
		return
	}
	if cfg.ServerAddress == "" {
		log.Fatal("Empty server address in config")
	}
	cs := charting.NewService(db)
	if err := cs.Start(cfg.ServerAddress); err != nil {
		log.WithFields(log.Fields{"error": err}).Fatal("Failed to start HTTP server")
	}
	defer cs.Stop()
	log.Println("Backend started")
	utils.Wait()
}

package charting

import (
	"context"
	"errors"
	"fmt"
	"github.com/ReneKroon/ttlcache"
	"github.com/fernandosanchezjr/godprng/analytics"
	"github.com/fernandosanchezjr/godprng/backend/storage"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"strings"
	"time"
)

const ReportCacheTTL = time.Minute

type Service struct {
	db     *storage.DB
	cache  *ttlcache.Cache
	server *http.Server
}

func NewService(db *storage.DB) *Service {
	return &Service{db: db, cache: ttlcache.NewCache()}
}

func (cs *Service) Router() *httprouter.Router {
	router := httprouter.New()
	router.GET("/", cs.GetSources)
	router.GET("/histogram/:source", cs.GetHistogram)
	router.GET("/history/:source", cs.GetHistory)
	return router
}

// Start listens on address and serves in the background.
func (cs *Service) Start(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	cs.server = &http.Server{Handler: cs.Router()}
	go func() {
		if err := cs.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Chart server stopped")
		}
	}()
	log.WithField("address", listener.Addr().String()).Println("Chart server started")
	return nil
}

func (cs *Service) Stop() {
	if cs.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cs.server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Error stopping chart server")
	}
	cs.server = nil
}

func (cs *Service) reports(source string, limit int) ([]*analytics.Report, error) {
	key := fmt.Sprintf("%s/%d", source, limit)
	if cached, found := cs.cache.Get(key); found {
		return cached.([]*analytics.Report), nil
	}
	reports, err := cs.db.GetReports(source, limit)
	if err != nil {
		return nil, err
	}
	cs.cache.SetWithTTL(key, reports, ReportCacheTTL)
	return reports, nil
}

func (cs *Service) writeError(w http.ResponseWriter, err error, fields log.Fields) {
	log.WithFields(fields).WithError(err).Error("Chart request failed")
	switch {
	case errors.Is(err, storage.ErrBucketNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, ErrInvalidParams):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (cs *Service) GetSources(w http.ResponseWriter, request *http.Request, _ httprouter.Params) {
	sources, err := cs.db.GetKnownSources()
	if err != nil {
		cs.writeError(w, err, log.Fields{"path": request.URL})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(strings.Join(sources, "\n") + "\n"))
}

func (cs *Service) GetHistogram(w http.ResponseWriter, request *http.Request, params httprouter.Params) {
	startTime := time.Now()
	source := params.ByName("source")
	fields := log.Fields{"path": request.URL, "source": source}
	reports, err := cs.reports(source, 1)
	if err == nil && len(reports) == 0 {
		err = storage.ErrBucketNotFound
	}
	if err != nil {
		cs.writeError(w, err, fields)
		return
	}
	if err := RenderHistogram(w, reports[0]); err != nil {
		log.WithFields(fields).WithError(err).Error("Error rendering chart")
	}
	fields["elapsedTime"] = time.Since(startTime)
	log.WithFields(fields).Println("Chart request")
}

func (cs *Service) GetHistory(w http.ResponseWriter, request *http.Request, params httprouter.Params) {
	startTime := time.Now()
	source := params.ByName("source")
	fields := log.Fields{"path": request.URL, "source": source}
	serviceParams, err := ParseServiceParams(request.URL.Query())
	if err != nil {
		cs.writeError(w, ErrInvalidParams, fields)
		return
	}
	reports, err := cs.reports(source, serviceParams.Limit)
	if err != nil {
		cs.writeError(w, err, fields)
		return
	}
	var passing int
	for _, r := range reports {
		if r.Passes(serviceParams.Alpha) {
			passing++
		}
	}
	if err := BuildHistory(source, reports, serviceParams.Refresh).Render(w); err != nil {
		log.WithFields(fields).WithError(err).Error("Error rendering chart")
	}
	fields["elapsedTime"] = time.Since(startTime)
	fields["reports"] = len(reports)
	fields["passing"] = passing
	log.WithFields(fields).Println("Chart request")
}

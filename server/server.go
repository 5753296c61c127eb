// Package server exposes a query.Engine over HTTP as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/amonks/movies/data"
	"github.com/amonks/movies/query"
	"go.uber.org/zap"
)

// Run serves the engine on addr until ctx is canceled, then shuts down
// gracefully.
func Run(ctx context.Context, eng *query.Engine, addr string, logger *zap.Logger) error {
	srv := http.Server{
		Addr:              addr,
		Handler:           New(eng, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() { errs <- srv.ListenAndServe() }()
	logger.Info("listening", zap.String("addr", addr), zap.Int("movies", eng.Len()))

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type handler struct {
	eng    *query.Engine
	logger *zap.Logger
}

// New returns a handler serving these routes:
//
//	GET /titles?type=MOVIE&contains=Matrix
//	GET /titles/{id}
//	GET /titles/by-year/{year}/genre/{genre}?type=MOVIE
//	GET /titles/by-runtime?type=MOVIE&min=90&max=120
//	GET /top/votes?type=MOVIE&count=10
//	GET /top/rated?type=MOVIE&count=3&start=2000&end=2002
//
// type defaults to MOVIE everywhere. start is required; end defaults to
// start.
func New(eng *query.Engine, logger *zap.Logger) http.Handler {
	h := &handler{eng: eng, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /titles", h.search)
	mux.HandleFunc("GET /titles/{id}", h.find)
	mux.HandleFunc("GET /titles/by-year/{year}/genre/{genre}", h.yearAndGenre)
	mux.HandleFunc("GET /titles/by-runtime", h.runtime)
	mux.HandleFunc("GET /top/votes", h.topVotes)
	mux.HandleFunc("GET /top/rated", h.topRated)
	return mux
}

func (h *handler) search(w http.ResponseWriter, req *http.Request) {
	titleType, err := titleTypeParam(req)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	h.json(w, req, h.eng.SearchTitlesContaining(titleType, req.URL.Query().Get("contains")))
}

func (h *handler) find(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")
	movie, ok := h.eng.FindByID(id)
	if !ok {
		h.error(w, req, http.StatusNotFound, fmt.Errorf("no title with id '%s'", id))
		return
	}
	h.json(w, req, movie)
}

func (h *handler) yearAndGenre(w http.ResponseWriter, req *http.Request) {
	titleType, err := titleTypeParam(req)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	year, err := parseInt("year", req.PathValue("year"))
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	genre, err := data.ParseGenre(req.PathValue("genre"))
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	h.json(w, req, h.eng.FilterByYearAndGenre(titleType, year, genre))
}

func (h *handler) runtime(w http.ResponseWriter, req *http.Request) {
	titleType, err := titleTypeParam(req)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	minMinutes, err := intParam(req, "min", 0)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	maxMinutes, err := intParam(req, "max", math.MaxInt32)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	h.json(w, req, h.eng.FilterByRuntimeRange(titleType, minMinutes, maxMinutes))
}

func (h *handler) topVotes(w http.ResponseWriter, req *http.Request) {
	titleType, err := titleTypeParam(req)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	count, err := intParam(req, "count", 10)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	h.json(w, req, h.eng.TopByVotes(count, titleType))
}

func (h *handler) topRated(w http.ResponseWriter, req *http.Request) {
	titleType, err := titleTypeParam(req)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	count, err := intParam(req, "count", 3)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	start, err := parseInt("start", req.URL.Query().Get("start"))
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	end, err := intParam(req, "end", start)
	if err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	if err := query.CheckYearSpan(start, end); err != nil {
		h.error(w, req, http.StatusBadRequest, err)
		return
	}
	h.json(w, req, h.eng.TopRatedPerYear(count, titleType, start, end))
}

func titleTypeParam(req *http.Request) (data.TitleType, error) {
	token := req.URL.Query().Get("type")
	if token == "" {
		return data.TitleTypeMovie, nil
	}
	return data.ParseTitleType(token)
}

func intParam(req *http.Request, name string, fallback int) (int, error) {
	str := req.URL.Query().Get(name)
	if str == "" {
		return fallback, nil
	}
	return parseInt(name, str)
}

func parseInt(name, str string) (int, error) {
	i, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("'%s' must be an integer, got '%s'", name, str)
	}
	return i, nil
}

func (h *handler) json(w http.ResponseWriter, req *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("error encoding response",
			zap.String("path", req.URL.Path),
			zap.Error(err))
	}
}

func (h *handler) error(w http.ResponseWriter, req *http.Request, status int, err error) {
	h.logger.Debug("request failed",
		zap.String("path", req.URL.Path),
		zap.Int("status", status),
		zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encErr != nil {
		h.logger.Error("error encoding error response",
			zap.String("path", req.URL.Path),
			zap.Error(encErr))
	}
}

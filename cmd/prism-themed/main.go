package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prismchat/prism/internal/catalog"
)

var (
	addr      = flag.String("addr", ":8000", "listen address")
	debugFlag = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newMux(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("theme catalog listening", "addr", *addr, "themes", len(builtinThemes))
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// newMux builds the catalog routes under /api, mirroring the paths the
// prism client requests.
func newMux(logger *slog.Logger) *http.ServeMux {
	if logger == nil {
		logger = slog.Default()
	}
	s := &server{logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/themes", s.listThemes)
	mux.HandleFunc("GET /api/themes/{id}", s.getTheme)
	mux.HandleFunc("GET /api/themes/categories/", s.listCategories)
	return mux
}

type server struct {
	logger *slog.Logger
}

func (s *server) listThemes(w http.ResponseWriter, r *http.Request) {
	summaries := make([]catalog.ThemeSummary, 0, len(builtinThemes))
	for _, t := range builtinThemes {
		summaries = append(summaries, t.ThemeSummary)
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *server) getTheme(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, t := range builtinThemes {
		if t.ID == id {
			s.writeJSON(w, http.StatusOK, t)
			return
		}
	}
	s.logger.Debug("unknown theme requested", "id", id)
	s.writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Theme not found"})
}

func (s *server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, themeCategories)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

package daemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/theirongolddev/whatif/internal/controller"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// ControlRequest is the body of POST /v1/controls/{id}.
type ControlRequest struct {
	Value string `json:"value"`
	Event string `json:"event,omitempty"`
}

// Handler returns the daemon's HTTP routes.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/state", s.handleState)
		r.Get("/report", s.handleReport)
		r.Get("/report/{kind}", s.handleReportKind)
		r.Post("/controls/{id}", s.handleControl)
		r.Post("/reset", s.handleReset)
		r.Get("/presets", s.handlePresets)
		r.Post("/presets/{name}", s.handleApplyPreset)
		r.Get("/events", s.handleEvents)
		r.Get("/stream", s.handleStream)
		r.Get("/chat", s.handleChat)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleState(w http.ResponseWriter, _ *http.Request) {
	st, _, _ := s.current()
	writeJSON(w, http.StatusOK, st)
}

func (s *Service) handleReport(w http.ResponseWriter, _ *http.Request) {
	_, b, _ := s.current()
	writeJSON(w, http.StatusOK, b)
}

// handleReportKind builds a bundle for another report with the current
// knobs, leaving the live state alone.
func (s *Service) handleReportKind(w http.ResponseWriter, r *http.Request) {
	kind, err := scenario.ParseReportKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	st, _, _ := s.current()
	st.Report = kind
	writeJSON(w, http.StatusOK, present.Build(st, s.cfg.Dataset))
}

func (s *Service) handleControl(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	def, err := controller.DefaultEvent(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req ControlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding control request: %w", err))
		return
	}
	ev, err := controller.ParseEvent(req.Event)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if ev == "" {
		ev = def
	}

	var (
		handled bool
		b       present.Bundle
	)
	s.withController("control:"+id, func(c *controller.Controller, p *controller.Panel) {
		if ev == controller.Click {
			handled = p.Fire(id, ev)
		} else {
			handled = p.Set(id, req.Value, ev)
		}
		b = c.Bundle()
	})
	if !handled {
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Errorf("control %q does not handle %q events", id, ev))
		return
	}

	log.Debug().Str("control", id).Str("event", string(ev)).Str("value", req.Value).Msg("control changed")
	writeJSON(w, http.StatusOK, b)
}

func (s *Service) handleReset(w http.ResponseWriter, _ *http.Request) {
	var b present.Bundle
	s.withController("reset", func(c *controller.Controller, _ *controller.Panel) {
		c.Reset()
		b = c.Bundle()
	})
	log.Info().Msg("scenario reset")
	writeJSON(w, http.StatusOK, b)
}

func (s *Service) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Presets)
}

func (s *Service) handleApplyPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := scenario.FindPreset(s.cfg.Presets, name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown preset %q", name))
		return
	}

	var b present.Bundle
	s.withController("preset:"+p.Name, func(c *controller.Controller, _ *controller.Panel) {
		c.ApplyPreset(p)
		b = c.Bundle()
	})
	log.Info().Str("preset", p.Name).Msg("preset applied")
	writeJSON(w, http.StatusOK, b)
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send the current bundle immediately.
	st, b, _ := s.current()
	writeSSE(w, Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		State:     st,
		Bundle:    b,
	})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w io.Writer, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if ev.ID > 0 {
		_, _ = fmt.Fprintf(w, "id: %d\n", ev.ID)
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

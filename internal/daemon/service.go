// Package daemon serves the what-if dashboard over HTTP for browser front ends.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/whatif/internal/chat"
	"github.com/theirongolddev/whatif/internal/controller"
	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"

	"github.com/rs/zerolog/log"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Addr         string
	EventsBuffer int
	Dataset      model.Dataset
	Initial      scenario.State
	Presets      []scenario.Preset
	Chat         chat.Agent
	Source       string // where the dataset came from, for /v1/status
}

// Event is emitted whenever the bundle is re-rendered.
type Event struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Cause     string         `json:"cause,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	State     scenario.State `json:"state"`
	Bundle    present.Bundle `json:"bundle"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time      `json:"started_at"`
	Addr            string         `json:"addr"`
	Source          string         `json:"source,omitempty"`
	Months          int            `json:"months"`
	State           scenario.State `json:"state"`
	Summary         string         `json:"summary"`
	Renders         int            `json:"renders"`
	EventCount      int            `json:"event_count"`
	LastEventID     int64          `json:"last_event_id"`
	SubscriberCount int            `json:"subscriber_count"`
	ChatClients     int            `json:"chat_clients"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	// ctlMu serializes every read and write of the panel and controller,
	// which are single-threaded by contract.
	ctlMu sync.Mutex
	panel *controller.Panel
	ctl   *controller.Controller
	cause string

	mu          sync.RWMutex
	startedAt   time.Time
	nextEventID int64
	events      []Event
	chatClients int

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if cfg.Initial.Span == 0 {
		cfg.Initial.Span = scenario.DefaultSpan
	}
	if cfg.Chat.Delay <= 0 {
		cfg.Chat.Delay = chat.DefaultDelay
	}
	if cfg.Presets == nil {
		cfg.Presets = scenario.BuiltinPresets()
	}

	s := &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
		panel:     controller.NewPanel(),
		cause:     "startup",
	}
	s.ctl = controller.New(s.panel, controller.RendererFunc(s.onRender), cfg.Dataset, cfg.Initial)
	s.ctl.Bind()
	s.cause = ""
	return s
}

// Run serves HTTP until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().Str("addr", s.cfg.Addr).Int("months", s.cfg.Dataset.Len()).Msg("whatif daemon listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("whatif daemon shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("daemon http server: %w", err)
	}
}

// onRender runs inside controller calls, so ctlMu is already held.
func (s *Service) onRender(b present.Bundle) {
	typ := "render"
	if s.cause == "startup" {
		typ = "snapshot"
	}
	ev := Event{
		Type:      typ,
		Cause:     s.cause,
		Timestamp: time.Now(),
		Bundle:    b,
	}
	if s.ctl != nil {
		ev.State = s.ctl.State()
	} else {
		ev.State = s.cfg.Initial
	}
	s.publishEvent(ev)
}

// withController runs fn with exclusive access to the controller and records
// cause on any event it emits.
func (s *Service) withController(cause string, fn func(c *controller.Controller, p *controller.Panel)) {
	s.ctlMu.Lock()
	defer s.ctlMu.Unlock()
	s.cause = cause
	fn(s.ctl, s.panel)
	s.cause = ""
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.nextEventID++
	ev.ID = s.nextEventID
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) current() (scenario.State, present.Bundle, int) {
	s.ctlMu.Lock()
	defer s.ctlMu.Unlock()
	return s.ctl.State(), s.ctl.Bundle(), s.ctl.Renders()
}

func (s *Service) snapshotStatus() Status {
	st, b, renders := s.current()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		Addr:            s.cfg.Addr,
		Source:          s.cfg.Source,
		Months:          s.cfg.Dataset.Len(),
		State:           st,
		Summary:         b.Summary,
		Renders:         renders,
		EventCount:      len(s.events),
		LastEventID:     s.nextEventID,
		SubscriberCount: len(s.subs),
		ChatClients:     s.chatClients,
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

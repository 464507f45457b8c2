package daemon

import (
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/theirongolddev/whatif/internal/chat"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: checkOrigin,
}

// checkOrigin accepts clients that send no Origin (CLI tools, tests), pages
// served from the daemon's own host, and pages on a loopback host.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// chatConn is one websocket chat session with its own transcript.
// mu guards the transcript and serializes writes to conn.
type chatConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
	log  *chat.Log
}

func (c *chatConn) submit(text string) (chat.Message, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg, ok := c.log.Submit(text)
	if !ok {
		return msg, false, nil
	}
	return msg, true, c.conn.WriteJSON(msg)
}

func (c *chatConn) reply(m chat.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Append(m)
	return c.conn.WriteJSON(m)
}

// handleChat reads text frames from the browser, echoes each accepted
// message back as a user message and answers it after the agent delay.
func (s *Service) handleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("chat upgrade failed")
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.chatClients++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.chatClients--
		s.mu.Unlock()
	}()

	cc := &chatConn{conn: conn, log: chat.NewLog(s.cfg.Chat.Reply)}
	done := make(chan struct{})
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		_, ok, err := cc.submit(string(data))
		if err != nil {
			return
		}
		if !ok {
			continue
		}

		s.cfg.Chat.Schedule(func(reply chat.Message) {
			select {
			case <-done:
				return
			default:
			}
			if err := cc.reply(reply); err != nil {
				log.Debug().Err(err).Msg("chat reply dropped")
			}
		})
	}
}

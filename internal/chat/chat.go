// Package chat is the placeholder assistant panel: it records what the user
// typed and answers with a canned message after a fixed delay.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultReply is the canned agent answer.
const DefaultReply = "[Demo Response] I’ll analyze that once integrated with GPT."

// DefaultDelay is how long the agent "thinks" before replying.
const DefaultDelay = 800 * time.Millisecond

// Role identifies who wrote a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is one chat bubble.
type Message struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

func newMessage(role Role, text string) Message {
	return Message{
		ID:   uuid.New(),
		Role: role,
		Text: text,
		At:   time.Now(),
	}
}

// Log is an ordered chat transcript. It is not safe for concurrent use.
type Log struct {
	reply    string
	messages []Message
}

// NewLog returns an empty transcript answering with reply, or DefaultReply
// when reply is empty.
func NewLog(reply string) *Log {
	if reply == "" {
		reply = DefaultReply
	}
	return &Log{reply: reply}
}

// Submit trims text and appends it as a user message. Blank input is
// ignored and reported with ok=false.
func (l *Log) Submit(text string) (msg Message, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}
	msg = newMessage(RoleUser, text)
	l.messages = append(l.messages, msg)
	return msg, true
}

// Reply appends the canned agent message and returns it.
func (l *Log) Reply() Message {
	msg := newMessage(RoleAgent, l.reply)
	l.messages = append(l.messages, msg)
	return msg
}

// Append records a message produced elsewhere, such as by an Agent.
func (l *Log) Append(m Message) {
	l.messages = append(l.messages, m)
}

// Messages returns a copy of the transcript.
func (l *Log) Messages() []Message {
	return append([]Message(nil), l.messages...)
}

// Len returns the number of messages.
func (l *Log) Len() int { return len(l.messages) }

// Agent produces delayed canned replies.
type Agent struct {
	Delay time.Duration
	Reply string
}

// NewAgent returns an agent with the default delay and reply.
func NewAgent() Agent {
	return Agent{Delay: DefaultDelay, Reply: DefaultReply}
}

// Message builds the agent's reply message.
func (a Agent) Message() Message {
	reply := a.Reply
	if reply == "" {
		reply = DefaultReply
	}
	return newMessage(RoleAgent, reply)
}

// Schedule calls fn with a reply after the agent's delay. Each call
// schedules its own reply; there is no cancellation or coalescing, so rapid
// submissions get one reply each.
func (a Agent) Schedule(fn func(Message)) {
	time.AfterFunc(a.Delay, func() {
		fn(a.Message())
	})
}

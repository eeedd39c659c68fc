package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Skotchmaster/localshop/internal/logging"
)

// DefaultDuration is how long a message stays on screen.
const DefaultDuration = 3 * time.Second

type Message struct {
	Text     string        `json:"text"`
	Duration time.Duration `json:"-"`
}

func New(text string) Message {
	return Message{Text: text, Duration: DefaultDuration}
}

type Sink interface {
	Notify(ctx context.Context, m Message)
}

// LogSink writes messages to the request logger, falling back to Logger.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Notify(ctx context.Context, m Message) {
	l := logging.FromContext(ctx)
	if l == slog.Default() && s.Logger != nil {
		l = s.Logger
	}
	l.Info("notification", "text", m.Text, "display_ms", m.Duration.Milliseconds())
}

// Recorder keeps every message it receives.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) Notify(_ context.Context, m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Texts returns just the text of each message, oldest first.
func (r *Recorder) Texts() []string {
	msgs := r.Messages()
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

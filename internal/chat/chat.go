// Package chat answers free-text career questions with a fixed set of intents
// and an optional generative fallback.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/history"
	"github.com/spigell/career-mentor/internal/insights"

	"go.uber.org/zap"
)

const emptyMessageReply = "Please type a question about careers."

// Intent recognizes one kind of question and answers it.
type Intent interface {
	Name() string
	Match(msg string) bool
	Reply(ctx context.Context, deps Deps, req *Request) (string, error)
}

// Deps are shared by all intents.
type Deps struct {
	Catalog  *careers.Catalog
	Insights *insights.Catalog
	Logger   *zap.Logger
}

// Request is a normalized user message.
type Request struct {
	User string
	// Message is trimmed and lower-cased.
	Message string
	// Hint is appended to most replies; it may be empty.
	Hint string
}

// Response is the bot's answer.
type Response struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}

// LatestFinder returns a user's most recent assessment.
type LatestFinder interface {
	Latest(ctx context.Context, user string) (*history.Assessment, error)
}

// Answerer handles messages no intent recognized.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Bot dispatches messages to the first matching intent.
type Bot struct {
	deps     Deps
	intents  []Intent
	history  LatestFinder
	answerer Answerer
}

// Option configures a Bot.
type Option func(*Bot)

// WithHistory makes replies include a hint built from the user's latest assessment.
func WithHistory(h LatestFinder) Option {
	return func(b *Bot) { b.history = h }
}

// WithAnswerer sets the fallback for unrecognized messages.
func WithAnswerer(a Answerer) Option {
	return func(b *Bot) { b.answerer = a }
}

// WithIntents replaces the default intents.
func WithIntents(intents ...Intent) Option {
	return func(b *Bot) { b.intents = intents }
}

// New creates a Bot with the default intents.
func New(deps Deps, opts ...Option) *Bot {
	if deps.Catalog == nil {
		deps.Catalog = careers.Default()
	}
	if deps.Insights == nil {
		deps.Insights = insights.Default()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	b := &Bot{deps: deps, intents: DefaultIntents()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ask answers message on behalf of user.
func (b *Bot) Ask(ctx context.Context, user, message string) (*Response, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return &Response{Intent: "empty", Reply: emptyMessageReply}, nil
	}

	req := &Request{User: user, Message: msg, Hint: b.skillHint(ctx, user)}

	for _, intent := range b.intents {
		if !intent.Match(msg) {
			continue
		}
		reply, err := intent.Reply(ctx, b.deps, req)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", intent.Name(), err)
		}
		b.deps.Logger.Debug("chat intent matched", zap.String("intent", intent.Name()))
		return &Response{Intent: intent.Name(), Reply: reply}, nil
	}

	if b.answerer != nil {
		answer, err := b.answerer.Answer(ctx, strings.TrimSpace(message))
		if err == nil && strings.TrimSpace(answer) != "" {
			return &Response{Intent: "answerer", Reply: strings.TrimSpace(answer)}, nil
		}
		if err != nil {
			b.deps.Logger.Warn("fallback answerer failed", zap.Error(err))
		}
	}

	return &Response{Intent: "help", Reply: helpText + req.Hint}, nil
}

func (b *Bot) skillHint(ctx context.Context, user string) string {
	if b.history == nil || user == "" {
		return ""
	}
	latest, err := b.history.Latest(ctx, user)
	if err != nil {
		if !errors.Is(err, history.ErrNotFound) {
			b.deps.Logger.Warn("cannot load latest assessment", zap.String("user", user), zap.Error(err))
		}
		return ""
	}
	return SkillHint(latest.Scores)
}

// SkillHint names the two strongest skills of scores.
func SkillHint(scores careers.Scores) string {
	top := scores.Strongest(2)
	parts := make([]string, len(top))
	for i, s := range top {
		parts[i] = fmt.Sprintf("%s (%.0f)", s.Name, s.Value)
	}
	return "\n\nYour strongest areas: " + strings.Join(parts, ", ") + "."
}

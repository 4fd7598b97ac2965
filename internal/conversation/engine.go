package conversation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/polkiloo/burgerbot/internal/catalog"
	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/notify"
	"github.com/polkiloo/burgerbot/internal/session"
)

// Sender delivers outbound messages to a customer through the messaging
// collaborator.
type Sender interface {
	SendText(ctx context.Context, customerID, text string) error
	SendDocument(ctx context.Context, customerID string, doc model.Document) error
}

// Assets resolves binary assets offered during the conversation.
type Assets interface {
	MenuDocument() (model.Document, error)
}

// Reply is one outbound message produced by a state transition. Options are
// quick-reply choices for the web widget; messaging transports ignore them.
type Reply struct {
	Text     string
	Document *model.Document
	Options  []model.Option
}

// Config carries the tunable parts of the dialogue.
type Config struct {
	StoreName           string
	HandoffWindow       time.Duration
	PrepNotifyDelay     time.Duration
	DispatchNotifyDelay time.Duration
	MinAddressLen       int
}

// Engine is the conversation state machine. It owns all cart mutation; the
// session store serializes events per customer, so handlers never race on one
// session.
type Engine struct {
	store     *session.Store
	catalog   *catalog.Catalog
	scheduler *notify.Scheduler
	assets    Assets
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewEngine constructs the engine.
func NewEngine(store *session.Store, cat *catalog.Catalog, scheduler *notify.Scheduler, assets Assets, cfg Config, logger *slog.Logger) *Engine {
	if cfg.MinAddressLen <= 0 {
		cfg.MinAddressLen = 10
	}
	return &Engine{
		store:     store,
		catalog:   cat,
		scheduler: scheduler,
		assets:    assets,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (e *Engine) WithNow(now func() time.Time) *Engine {
	e.now = now
	return e
}

// outcome is the result of one state transition.
type outcome struct {
	replies       []Reply
	deleteSession bool
	completed     bool
}

// Handle processes one inbound event to completion: it mutates the session,
// emits every outbound message in transition order through out, and returns
// the replies for callers that render them directly (the HTTP chat API).
func (e *Engine) Handle(ctx context.Context, ev model.InboundEvent, out Sender) ([]Reply, error) {
	input := sanitize(ev.Text)

	var replies []Reply
	err := e.store.Do(ctx, ev.CustomerID, sanitize(ev.DisplayName), func(sess *model.Session, firstContact bool) (session.Directive, error) {
		now := e.now()
		snapshot := sess.Clone()

		// Human-handoff override: drop automated replies while an agent is
		// presumed active; announce expiry on the first event afterwards.
		if !sess.HumanHandoffUntil.IsZero() {
			if now.Before(sess.HumanHandoffUntil) {
				return session.Directive{}, nil
			}
			sess.HumanHandoffUntil = time.Time{}
			sess.State = model.StateMenu
			oc := outcome{replies: []Reply{{Text: msgHandoffEnded}, e.menuPromptReply()}}
			replies, _ = e.deliver(ctx, sess, snapshot, oc, out)
			return session.Directive{}, nil
		}

		oc := e.transition(sess, input, now)
		var delivered bool
		replies, delivered = e.deliver(ctx, sess, snapshot, oc, out)
		if !delivered {
			return session.Directive{}, nil
		}

		if oc.completed {
			e.scheduler.After(e.cfg.PrepNotifyDelay, sess.CustomerID, msgOrderPreparing)
			e.scheduler.After(e.cfg.DispatchNotifyDelay, sess.CustomerID, msgOrderDispatched)
		}

		return session.Directive{Delete: oc.deleteSession}, nil
	})
	return replies, err
}

// deliver sends the transition's replies in order. A collaborator failure
// rolls the session back to its pre-event snapshot and reports a short
// apology instead, so a failed send never advances state. The second return
// is false when delivery failed.
func (e *Engine) deliver(ctx context.Context, sess *model.Session, snapshot *model.Session, oc outcome, out Sender) ([]Reply, bool) {
	for i, reply := range oc.replies {
		var err error
		if reply.Document != nil {
			err = out.SendDocument(ctx, sess.CustomerID, *reply.Document)
		} else {
			err = out.SendText(ctx, sess.CustomerID, reply.Text)
		}
		if err == nil {
			continue
		}

		e.logger.Error("outbound send failed",
			slog.String("customer_id", sess.CustomerID),
			slog.Int("reply", i),
			slog.String("error", err.Error()))
		sess.RestoreFrom(snapshot)

		apology := Reply{Text: msgSendFailure}
		if sendErr := out.SendText(ctx, sess.CustomerID, apology.Text); sendErr != nil {
			e.logger.Error("apology send failed",
				slog.String("customer_id", sess.CustomerID),
				slog.String("error", sendErr.Error()))
		}
		return []Reply{apology}, false
	}
	return oc.replies, true
}

// transition dispatches on the current state. User input mistakes re-prompt
// in place; they are never errors.
func (e *Engine) transition(sess *model.Session, input string, now time.Time) outcome {
	switch sess.State {
	case model.StateStart, model.StatePostOrder:
		return e.handleStart(sess)
	case model.StateMenu:
		return e.handleMenu(sess, input, now)
	case model.StateSelecting:
		return e.handleSelecting(sess, input)
	case model.StateEditingCart:
		return e.handleEditingCart(sess, input)
	case model.StateAskNote:
		return e.handleAskNote(sess, input)
	case model.StateAwaitNoteText:
		return e.handleAwaitNoteText(sess, input)
	case model.StateAwaitAddress:
		return e.handleAwaitAddress(sess, input)
	case model.StateChoosePayment:
		return e.handleChoosePayment(sess, input, now)
	case model.StateAwaitChangeAmount:
		return e.handleAwaitChangeAmount(sess, input, now)
	case model.StateConfirmCancel:
		return e.handleConfirmCancel(sess, input)
	default:
		// Contract violation: unknown state. Fatal for this event only.
		e.logger.Error("session in unknown state",
			slog.String("customer_id", sess.CustomerID),
			slog.String("state", string(sess.State)))
		return outcome{}
	}
}

// sanitize removes control characters and surrounding whitespace from inbound
// text.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// NopSender discards outbound messages. The HTTP chat API uses it because the
// widget renders the returned replies itself.
type NopSender struct{}

func (NopSender) SendText(context.Context, string, string) error             { return nil }
func (NopSender) SendDocument(context.Context, string, model.Document) error { return nil }

// LogSender records outbound messages in the log instead of delivering them.
// It backs deployments without a messaging transport, where deferred
// notifications have no channel to reach the customer.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender constructs the logging fallback sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendText(_ context.Context, customerID, text string) error {
	s.logger.Info("outbound message without transport",
		slog.String("customer_id", customerID),
		slog.String("text", text))
	return nil
}

func (s *LogSender) SendDocument(_ context.Context, customerID string, doc model.Document) error {
	s.logger.Info("outbound document without transport",
		slog.String("customer_id", customerID),
		slog.String("path", doc.Path))
	return nil
}

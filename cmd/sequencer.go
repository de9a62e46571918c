package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/minatoaquaMK2/vibe-kanban/internal/dialogs"
	"github.com/minatoaquaMK2/vibe-kanban/internal/gating"
	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
	"github.com/minatoaquaMK2/vibe-kanban/internal/session"
)

// ErrDeclined is returned when the user declines the disclaimer or aborts
// onboarding. Nothing is saved; the next run resumes at the same dialog.
var ErrDeclined = errors.New("setup not completed")

// saveTimeout bounds a single background config save.
const saveTimeout = 30 * time.Second

// Sequencer drives the configuration store and the gating controller
// together: it loads the record, renders whichever dialog the controller
// indicates, applies resolutions optimistically and persists them in the
// background.
type Sequencer struct {
	store *session.Store
	in    *bufio.Reader
	out   io.Writer

	autoResolved bool
	saves        sync.WaitGroup
}

// NewSequencer creates a sequencer over the given store and terminal.
func NewSequencer(store *session.Store, in io.Reader, out io.Writer) *Sequencer {
	return &Sequencer{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run blocks until the record clears every gate. The initial load is
// blocking: nothing gated renders while it is in flight, and a load failure
// aborts the command. Dialog resolutions dismiss immediately; their saves
// are fire-and-forget.
func (s *Sequencer) Run(ctx context.Context) error {
	if err := s.store.Load(ctx); err != nil {
		return err
	}

	for {
		d := gating.Evaluate(s.store.Get())
		switch d.Dialog {
		case gating.DialogDisclaimer:
			accepted, err := dialogs.PromptDisclaimer(s.in, s.out)
			if err != nil {
				return err
			}
			if !accepted {
				return ErrDeclined
			}
			s.resolve(gating.AcceptDisclaimer())

		case gating.DialogOnboarding:
			result, err := dialogs.PromptOnboarding(s.in, s.out)
			if err != nil {
				return err
			}
			if result == nil {
				return ErrDeclined
			}
			s.resolve(gating.CompleteOnboarding(result.Executor, result.Editor, result.Theme))

		default:
			if d.AutoResolve != nil && !s.autoResolved {
				// Applied at most once per session so re-evaluation cannot
				// queue duplicate saves.
				s.autoResolved = true
				s.resolve(*d.AutoResolve)
				continue
			}
			return nil
		}
	}
}

// resolve applies the update to the store optimistically and issues the
// save in the background. The local state is the session's truth: a failed
// save is logged, never rolled back, and the dialog is not re-shown.
func (s *Sequencer) resolve(u models.ConfigUpdate) {
	s.store.Update(u)
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.store.Save(ctx); err != nil {
			slog.Warn("config save failed, keeping local state", "error", err)
		}
	}()
}

// Wait blocks until in-flight saves finish or the timeout elapses.
func (s *Sequencer) Wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.saves.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		slog.Warn("gave up waiting for in-flight config saves")
	}
}

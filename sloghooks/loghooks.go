// Package sloghooks reports generator events to a log/slog logger.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/uniqgen"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CollisionEvery uint64
	ExhaustedEvery uint64
	// Prefix for event names. Defaults to "uniqgen".
	Name string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	collisionCtr atomic.Uint64
	exhaustedCtr atomic.Uint64
}

var _ uniqgen.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	if opts.Name == "" {
		opts.Name = "uniqgen"
	}
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Collision() {
	if h.l == nil || !sample(h.opts.CollisionEvery, &h.collisionCtr) {
		return
	}
	h.l.Debug(h.opts.Name + ".collision")
}

func (h *Hooks) Exhausted(attempts int) {
	if h.l == nil || !sample(h.opts.ExhaustedEvery, &h.exhaustedCtr) {
		return
	}
	h.l.Info(h.opts.Name+".exhausted",
		"attempts", attempts)
}

func (h *Hooks) KeyError(err error) {
	if h.l == nil {
		return
	}
	h.l.Warn(h.opts.Name+".key_error",
		"err", err)
}

func (h *Hooks) Purged(removed int) {
	if h.l == nil {
		return
	}
	h.l.Info(h.opts.Name+".purged",
		"removed", removed)
}

package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
)

// isPath ensures route expressions are simple and unambiguous.
// Paths are of the form "bucket/operation".
var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	handlers map[string]nftoken.Handler
}

var _ nftoken.Registry = (*Router)(nil)
var _ nftoken.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]nftoken.Handler),
	}
}

// Handle implements Registry interface. Using a message with an invalid
// path or registering a handler for the same message path twice panics.
func (r *Router) Handle(m nftoken.Msg, h nftoken.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for the message of this
// transaction. A handler that fails with a not found error is returned
// if no handler was registered for that message.
func (r *Router) handler(tx nftoken.Tx) nftoken.Handler {
	msg, err := tx.GetMsg()
	if err != nil {
		return &failHandler{err: errors.Wrap(err, "cannot load msg")}
	}
	if h, ok := r.handlers[msg.Path()]; ok {
		return h
	}
	return &failHandler{err: errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", msg.Path())}
}

// Check dispatches to the proper handler based on the message path
func (r *Router) Check(ctx nftoken.Context, store nftoken.KVStore, tx nftoken.Tx) (*nftoken.CheckResult, error) {
	ctx = nftoken.WithLogInfo(ctx, "call", "check_tx", "path", nftoken.GetPath(tx))
	res, err := r.handler(tx).Check(ctx, store, tx)
	if err != nil {
		nftoken.GetLogger(ctx).Error("transaction rejected", "err", err)
	}
	return res, err
}

// Deliver dispatches to the proper handler based on the message path
func (r *Router) Deliver(ctx nftoken.Context, store nftoken.KVStore, tx nftoken.Tx) (*nftoken.DeliverResult, error) {
	ctx = nftoken.WithLogInfo(ctx, "call", "deliver_tx", "path", nftoken.GetPath(tx))
	res, err := r.handler(tx).Deliver(ctx, store, tx)
	if err != nil {
		nftoken.GetLogger(ctx).Error("transaction failed", "err", err)
	} else {
		nftoken.GetLogger(ctx).Debug("transaction delivered")
	}
	return res, err
}

// failHandler always fails with the configured error
type failHandler struct {
	err error
}

var _ nftoken.Handler = (*failHandler)(nil)

func (h *failHandler) Check(nftoken.Context, nftoken.KVStore, nftoken.Tx) (*nftoken.CheckResult, error) {
	return nil, h.err
}

func (h *failHandler) Deliver(nftoken.Context, nftoken.KVStore, nftoken.Tx) (*nftoken.DeliverResult, error) {
	return nil, h.err
}

package app

import (
	"fmt"
	"regexp"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
)

const (
	// maxPathLength is an arbitrary limit to avoid unreasonable routes
	maxPathLength = 40
)

var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]vaultlock.Handler
}

var _ vaultlock.Registry = (*Router)(nil)
var _ vaultlock.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]vaultlock.Handler, 10),
	}
}

// Handle adds a new Handler for the given path. Panics on duplicate
// registration or invalid path - this is a setup-time error.
func (r *Router) Handle(path string, h vaultlock.Handler) {
	if !isPath(path) || len(path) > maxPathLength {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path.
// If no path is found, returns a noSuchPathHandler.
func (r *Router) handler(path string) vaultlock.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path}
}

// Check dispatches to the proper handler based on the message path
func (r *Router) Check(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	h := r.handler(vaultlock.GetPath(tx))
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path
func (r *Router) Deliver(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	h := r.handler(vaultlock.GetPath(tx))
	return h.Deliver(ctx, store, tx)
}

//---------------- helpers -----------

// noSuchPathHandler always returns ErrNotFound
type noSuchPathHandler struct {
	path string
}

var _ vaultlock.Handler = noSuchPathHandler{}

// Check always returns ErrNotFound
func (h noSuchPathHandler) Check(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}

// Deliver always returns ErrNotFound
func (h noSuchPathHandler) Deliver(ctx vaultlock.Context, store vaultlock.KVStore, tx vaultlock.Tx) (*vaultlock.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}

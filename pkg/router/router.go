package router

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

var DefaultError = JsonError{
	Code: http.StatusInternalServerError,
	Err:  "internal server error",
}

// Router is a wrapper around chi.Router that provides error handling.
// Handlers return an error that gets mapped to an error response. Error
// mappers can be registered for specific errors to provide custom error
// responses.
type Router struct {
	chi.Router
	mappings     []errorMapping
	defaultError JsonError
	logger       *slog.Logger
}

type errorMapping struct {
	target error
	fn     ErrorMapper
}

func New(opts ...RouterOption) *Router {
	router := &Router{
		Router:       chi.NewRouter(),
		defaultError: DefaultError,
		logger:       slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	for _, opt := range opts {
		opt(router)
	}
	return router
}

type RouterOption func(*Router)

func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

func WithDefaultError(err JsonError) RouterOption {
	return func(r *Router) {
		r.defaultError = err
	}
}

// HandlerFunc is a function that handles an HTTP request and returns an
// error. When the handler fails it should not write anything to the response
// writer; the returned error is mapped to an error response instead.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorMapper is a function that maps go errors to API errors.
type ErrorMapper func(error) Error

// RegisterErrorMapper registers fn for errors matching target, as determined
// by errors.Is. Mappers are tried in registration order.
func (a *Router) RegisterErrorMapper(target error, fn ErrorMapper) {
	a.mappings = append(a.mappings, errorMapping{target: target, fn: fn})
}

// mapError maps a go error to an API error.
//   - if the error already is a JsonError it is returned as is.
//   - otherwise the first registered mapper whose target matches is applied.
//   - if no mapper matches the default error is returned.
func (a *Router) mapError(err error) Error {
	var apiErr JsonError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, m := range a.mappings {
		if errors.Is(err, m.target) {
			return m.fn(err)
		}
	}
	return a.defaultError
}

func (a *Router) handleWithErr(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		resError := a.mapError(err)
		if resError.StatusCode() >= http.StatusInternalServerError {
			a.logger.Error(err.Error(),
				slog.String("method", r.Method), slog.String("path", r.URL.Path))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resError.StatusCode())
		if err := resError.Encode(w); err != nil {
			a.logger.Error("encode error response", slog.String("error", err.Error()))
		}
	}
}

// Route mounts a sub-router with the same error mappings, default error, and
// logger along the pattern.
func (a *Router) Route(pattern string, fn func(r *Router)) {
	a.Router.Route(pattern, func(cr chi.Router) {
		sub := &Router{
			Router:       cr,
			mappings:     a.mappings,
			defaultError: a.defaultError,
			logger:       a.logger,
		}
		fn(sub)
	})
}

func (a *Router) Get(path string, h HandlerFunc) {
	a.Router.Get(path, a.handleWithErr(h))
}

func (a *Router) Post(path string, h HandlerFunc) {
	a.Router.Post(path, a.handleWithErr(h))
}

func (a *Router) Put(path string, h HandlerFunc) {
	a.Router.Put(path, a.handleWithErr(h))
}

func (a *Router) Delete(path string, h HandlerFunc) {
	a.Router.Delete(path, a.handleWithErr(h))
}

func (a *Router) Head(path string, h HandlerFunc) {
	a.Router.Head(path, a.handleWithErr(h))
}

package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Route binds one method and path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Name    string
	handle  func(*Server, http.ResponseWriter, *http.Request)
}

// String renders the route as it appears in the route table.
func (r Route) String() string {
	return fmt.Sprintf("%-7s %-18s %s", r.Method, r.Pattern, r.Name)
}

// Routes returns the route table in registration order.
func Routes() []Route {
	return []Route{
		{http.MethodGet, "/api/tasks", "list", (*Server).listTasks},
		{http.MethodGet, "/api/tasks/{id}", "get", (*Server).getTask},
		{http.MethodPost, "/api/tasks", "create", (*Server).createTask},
		{http.MethodPut, "/api/tasks/{id}", "replace", (*Server).replaceTask},
		{http.MethodPatch, "/api/tasks/{id}", "patch", (*Server).patchTask},
		{http.MethodDelete, "/api/tasks/{id}", "delete", (*Server).deleteTask},
	}
}

// routes builds the mux. Anything the table does not match, including a
// known path with another method, falls through to notFound.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	for _, route := range Routes() {
		handle := route.handle
		mux.HandleFunc(route.Method+" "+route.Pattern, func(w http.ResponseWriter, r *http.Request) {
			handle(s, w, r)
		})
	}
	mux.HandleFunc("/", s.notFound)
	return stripTrailingSlash(mux)
}

type requestPathKey struct{}

// stripTrailingSlash serves /api/tasks/ and /api/tasks/1/ like their
// slash-less forms. Only one slash is dropped.
func stripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if len(p) > 1 && strings.HasSuffix(p, "/") {
			u := *r.URL
			u.Path = strings.TrimSuffix(p, "/")
			u.RawPath = strings.TrimSuffix(u.RawPath, "/")
			r = r.WithContext(context.WithValue(r.Context(), requestPathKey{}, p))
			r.URL = &u
		}
		next.ServeHTTP(w, r)
	})
}

// notFound answers with the path as the client sent it.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if requested, ok := r.Context().Value(requestPathKey{}).(string); ok {
		path = requested
	}
	writeText(w, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, path))
}

// WriteRouteTable prints one line per route.
func WriteRouteTable(w io.Writer) error {
	for _, route := range Routes() {
		if _, err := fmt.Fprintln(w, route.String()); err != nil {
			return err
		}
	}
	return nil
}

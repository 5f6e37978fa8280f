package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// ANSI colors for the access log.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method  string
	pattern string
	handler HandlerFunc
}

// Router is a minimal method+path router. Patterns are slash-separated
// segments where "*" matches one segment, and a trailing "*" matches the
// rest of the path. Routes are tried in registration order, so register the
// more specific patterns first.
type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

func (r *Router) handle(method, pattern string, handler HandlerFunc) {
	r.routes = append(r.routes, route{method: method, pattern: pattern, handler: handler})
}

func (r *Router) GET(pattern string, handler HandlerFunc)  { r.handle(http.MethodGet, pattern, handler) }
func (r *Router) POST(pattern string, handler HandlerFunc) { r.handle(http.MethodPost, pattern, handler) }
func (r *Router) PUT(pattern string, handler HandlerFunc)  { r.handle(http.MethodPut, pattern, handler) }
func (r *Router) DELETE(pattern string, handler HandlerFunc) {
	r.handle(http.MethodDelete, pattern, handler)
}

// ServeHTTP dispatches to the first matching route and writes an access log
// line with the status and duration.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	handler, pathKnown := r.match(req.Method, req.URL.Path)
	switch {
	case handler != nil:
		handler(lrw, req)
	case pathKnown:
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	default:
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, time.Since(start), colorReset,
	)
}

// match finds the handler for a method and path. pathKnown reports whether
// some route matched the path regardless of method, for 405 responses.
func (r *Router) match(method, path string) (HandlerFunc, bool) {
	pathKnown := false
	for _, rt := range r.routes {
		if !matchPattern(path, rt.pattern) {
			continue
		}
		pathKnown = true
		if rt.method == method {
			return rt.handler, true
		}
	}
	return nil, pathKnown
}

func matchPattern(path, pattern string) bool {
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	patSegs := strings.Split(strings.Trim(pattern, "/"), "/")

	// trailing "*" swallows the rest of the path
	rest := len(patSegs) > 0 && patSegs[len(patSegs)-1] == "*"
	if rest {
		if len(pathSegs) < len(patSegs)-1 {
			return false
		}
	} else if len(pathSegs) != len(patSegs) {
		return false
	}

	for i, seg := range patSegs {
		if seg == "*" {
			continue
		}
		if i >= len(pathSegs) || pathSegs[i] != seg {
			return false
		}
	}
	return true
}

// Start runs the HTTP server. Blocks until the server exits.
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r))
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}

// Package httpx implements the redirect responder: an HTTP listener that
// answers every request path with the contents of a single static page.
package httpx

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pkg/errors"
)

// indexPage is the one file served for every request path.
const indexPage = "index.html"

// Server is a running redirect responder.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Start binds a TCP listener on addr and serves the redirect page from dir in
// a background goroutine. The directory must exist; a missing index page
// inside it surfaces as a 404 at request time instead. A single startup line
// goes to logger, and request handling produces no log output.
func Start(addr, dir string, logger *log.Logger) (*Server, error) {
	if addr == "" {
		addr = ":80"
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, "redirect directory")
	}
	if !fi.IsDir() {
		return nil, errors.Errorf("redirect directory %q is not a directory", dir)
	}

	srv := &http.Server{
		// osfs bounds all lookups to dir, so the page is resolved per request
		// without touching the process working directory.
		Handler: NewHandler(osfs.New(dir)),
		// Keep per-connection error chatter off the lifecycle log.
		ErrorLog: log.New(io.Discard, "", 0),
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "bind %s", addr)
	}
	go func() {
		if logger != nil {
			logger.Printf("redirect server running on %s serving %q", ln.Addr(), dir)
		}
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Printf("serve error: %v", err)
			}
		}
	}()
	return &Server{srv: srv, ln: ln}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Shutdown stops accepting connections and waits for in-flight responses.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// NewHandler returns the path-override handler: any GET or HEAD request,
// whatever its path or query, is answered with the index page from fsys.
// Content type, length, conditional requests and ranges are delegated to
// http.ServeContent. Other methods get 501, no override is installed for
// them.
func NewHandler(fsys billy.Filesystem) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
		default:
			http.Error(w, "Unsupported method ("+r.Method+")", http.StatusNotImplemented)
			return
		}
		f, fi, err := openIndex(fsys)
		if err != nil {
			if os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "500 internal server error", http.StatusInternalServerError)
			return
		}
		defer f.Close()
		http.ServeContent(w, r, indexPage, fi.ModTime(), f)
	})
}

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

type Action string

type Method string

const (
	Data Action = "data"
	Api  Action = "api"

	GET  Method = "GET"
	POST Method = "POST"
)

// Handler processes a request and returns the payload and status code of the response.
type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Action Action
	Path   string
	Method Method
	Exec   Handler
}

// Server is a minimal http server executing one request at a time.
type Server struct {
	name   string
	port   int
	debug  bool
	lock   *sync.Mutex
	routes []Route
	raw    map[string]http.Handler
}

// NewServer creates a new server.
func NewServer(name string, port int) *Server {
	return &Server{
		name:   name,
		port:   port,
		lock:   new(sync.Mutex),
		routes: make([]Route, 0),
		raw:    make(map[string]http.Handler),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// AddRoute adds a new route to the server
func (s *Server) AddRoute(method Method, action Action, path string, exec Handler) *Server {
	s.routes = append(s.routes, Route{
		Action: action,
		Path:   path,
		Method: method,
		Exec:   exec,
	})
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Handle registers a plain http handler for the given path.
func (s *Server) Handle(path string, handler http.Handler) *Server {
	s.raw[path] = handler
	return s
}

func (s *Server) handle(route Route) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if Method(r.Method) != route.Method {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		// handlers are not expected to be safe for concurrent use
		s.lock.Lock()
		defer s.lock.Unlock()
		if s.debug {
			log.Info().
				Str("server", s.name).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Msg("request")
		}
		b, code, err := route.Exec(r)
		if err != nil {
			s.error(w, err, code)
		} else {
			s.respond(w, b, code)
		}
	}
}

// Handler returns the http handler serving all registered routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, route := range s.routes {
		if route.Path != "" {
			mux.HandleFunc(fmt.Sprintf("/%s/%s", route.Action, route.Path), s.handle(route))
		} else {
			mux.HandleFunc(fmt.Sprintf("/%s", route.Action), s.handle(route))
		}
	}
	for path, handler := range s.raw {
		mux.Handle(path, handler)
	}
	return mux
}

// Run starts the server
func (s *Server) Run() error {
	log.Info().Str("server", s.name).Int("port", s.port).Msg("starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler()); err != nil {
		return fmt.Errorf("could not start server '%s': %w", s.name, err)
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, b []byte, code int) {
	if code == 0 {
		code = http.StatusOK
	}
	w.WriteHeader(code)
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, err error, code int) {
	if code == 0 || code == http.StatusOK {
		code = http.StatusInternalServerError
	}
	log.Error().Err(err).Int("code", code).Msg("error for http request")
	s.respond(w, []byte(err.Error()), code)
}

// Live is a liveness route.
func Live() Route {
	return Route{
		Action: Api,
		Path:   "live",
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// ReadJson reads the json body of the request into v.
func ReadJson(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) > 0 {
		err = json.Unmarshal(body, v)
		if err != nil {
			return err
		}
	}
	return nil
}

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/convox/refsort/pkg/cma"
	"github.com/convox/refsort/pkg/config"
	"github.com/convox/refsort/pkg/history"
	"github.com/convox/refsort/pkg/jwt"
	"github.com/convox/refsort/pkg/sorter"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdapi"
)

const (
	roleKey = "role"
	userKey = "user"
)

var (
	ShutdownTimeout = 10 * time.Second
)

type Server struct {
	*stdapi.Server
	Engine       *sorter.Engine
	History      structs.History
	Installation structs.Installation
	Jobs         structs.Jobs
	Locale       string
	Secret       string
}

// New builds a server from c talking to the management api.
func New(c *config.Config) (*Server, error) {
	p, err := cma.New(c.Endpoint, c.Space, c.Environment, c.Token)
	if err != nil {
		return nil, err
	}

	h, err := history.Open(c.History)
	if err != nil {
		return nil, err
	}

	s := NewWithProvider(p, h)

	s.Installation = c.Installation
	s.Jobs = c.Jobs
	s.Locale = c.Locale
	s.Secret = c.Secret

	return s, nil
}

func NewWithProvider(p structs.Provider, h structs.History) *Server {
	s := &Server{
		History:      h,
		Installation: structs.DefaultInstallation(),
		Locale:       config.DefaultLocale,
		Server:       stdapi.New("api", "api"),
	}

	s.Engine = sorter.New(p)
	s.Engine.Installation = &s.Installation

	s.Router.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok\n")
	})

	auth := s.Subrouter("/")

	auth.Use(s.authenticate)
	auth.Use(s.Authorize)

	auth.Route("GET", "/options", s.OptionsGet)
	auth.Route("GET", "/entries/{entry}/fields/{field}", s.FieldEntryList)
	auth.Route("POST", "/entries/{entry}/fields/{field}/sort", s.FieldSort)
	auth.Route("GET", "/history", s.HistoryList)

	return s
}

// Serve listens for https on addr until ctx is done and then shuts the
// server down, waiting up to ShutdownTimeout for open requests.
func (s *Server) Serve(ctx context.Context, addr string) error {
	errs := make(chan error, 1)

	go func() {
		errs <- s.Listen("https", addr)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(sctx); err != nil {
		return err
	}

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-sctx.Done():
		return sctx.Err()
	}
}

// Close releases the history store.
func (s *Server) Close() error {
	if c, ok := s.History.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

func (s *Server) authenticate(next stdapi.HandlerFunc) stdapi.HandlerFunc {
	return func(c *stdapi.Context) error {
		if s.Secret == "" {
			SetReadWriteRole(c)
			return next(c)
		}

		parts := strings.SplitN(c.Header("Authorization"), " ", 2)

		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return stdapi.Errorf(401, "invalid authentication")
		}

		td, err := jwt.NewJwtManager(s.Secret).Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return stdapi.Errorf(401, "invalid authentication")
		}

		c.Set(roleKey, td.Role)
		c.Set(userKey, td.User)

		return next(c)
	}
}

// Authorize lets reads through for any role and requires the read-write
// role for everything else.
func (s *Server) Authorize(next stdapi.HandlerFunc) stdapi.HandlerFunc {
	return func(c *stdapi.Context) error {
		td := &structs.TokenData{}

		td.Role, _ = c.Get(roleKey).(string)

		switch c.Request().Method {
		case http.MethodGet, http.MethodHead:
			if td.Role == "" {
				return stdapi.Errorf(401, "you are unauthorized to access this")
			}
		default:
			if !td.CanWrite() {
				return stdapi.Errorf(401, "you are unauthorized to access this")
			}
		}

		return next(c)
	}
}

func SetReadRole(c *stdapi.Context) {
	c.Set(roleKey, structs.RoleRead)
}

func SetReadWriteRole(c *stdapi.Context) {
	c.Set(roleKey, structs.RoleReadWrite)
}

func (s *Server) hook(name string, args ...interface{}) error {
	vfn, ok := reflect.TypeOf(s).MethodByName(name)
	if !ok {
		return nil
	}

	rargs := []reflect.Value{reflect.ValueOf(s)}

	for _, arg := range args {
		rargs = append(rargs, reflect.ValueOf(arg))
	}

	rvs := vfn.Func.Call(rargs)
	if len(rvs) == 0 {
		return nil
	}

	if err, ok := rvs[0].Interface().(error); ok && err != nil {
		return err
	}

	return nil
}

func (s *Server) user(c *stdapi.Context) string {
	u, _ := c.Get(userKey).(string)
	return u
}

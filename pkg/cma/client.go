package cma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/convox/stdsdk"
)

const (
	DefaultEndpoint    = "https://api.contentful.com"
	DefaultEnvironment = "master"
	MediaType          = "application/vnd.contentful.management.v1+json"
)

var (
	MaxRetryInterval = 1 * time.Minute
	RetryInterval    = 1 * time.Second
)

type Client struct {
	*stdsdk.Client
	Environment string
	HTTPClient  *http.Client
	Retries     int
	Space       string
	Token       string
	Version     string

	ctx context.Context
}

// ensure interface parity
var _ structs.Provider = &Client{}

func New(endpoint, space, environment, token string) (*Client, error) {
	s, err := stdsdk.New(helpers.CoalesceString(endpoint, DefaultEndpoint))
	if err != nil {
		return nil, err
	}

	c := &Client{
		Client:      s,
		Environment: helpers.CoalesceString(environment, DefaultEnvironment),
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		Retries:     5,
		Space:       space,
		Token:       token,
		Version:     "dev",
		ctx:         context.Background(),
	}

	c.Client.Headers = c.Headers

	return c, nil
}

func NewFromEnv() (*Client, error) {
	return New(
		os.Getenv("CONTENTFUL_ENDPOINT"),
		os.Getenv("CONTENTFUL_SPACE_ID"),
		os.Getenv("CONTENTFUL_ENVIRONMENT"),
		os.Getenv("CONTENTFUL_MANAGEMENT_TOKEN"),
	)
}

func (c *Client) Headers() http.Header {
	h := http.Header{}

	h.Set("User-Agent", fmt.Sprintf("refsort/%s", c.Version))

	if c.Token != "" {
		h.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	return h
}

func (c *Client) WithContext(ctx context.Context) structs.Provider {
	cc := *c
	cc.ctx = ctx
	return &cc
}

func (c *Client) context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}

	return c.ctx
}

// path builds an environment scoped api path. String arguments are escaped
// as single path segments.
func (c *Client) path(format string, args ...interface{}) string {
	for i, a := range args {
		if s, ok := a.(string); ok {
			args[i] = url.PathEscape(s)
		}
	}

	return fmt.Sprintf("/spaces/%s/environments/%s/%s", url.PathEscape(c.Space), url.PathEscape(c.Environment), fmt.Sprintf(format, args...))
}

// do sends a request and decodes the response into out, retrying while the
// api reports rate limiting. opts is called once per attempt so request
// bodies can be replayed.
func (c *Client) do(method, path string, opts func() stdsdk.RequestOptions, out interface{}) error {
	if c.Space == "" {
		return fmt.Errorf("space required")
	}

	return helpers.RetryWhen(c.context(), c.Retries, RetryInterval, rateLimited, func() error {
		req, err := c.Request(method, path, opts())
		if err != nil {
			return err
		}

		res, err := c.HTTPClient.Do(req.WithContext(c.context()))
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if err := responseError(res); err != nil {
			return err
		}

		if out == nil {
			return nil
		}

		return json.NewDecoder(res.Body).Decode(out)
	})
}

// rateLimited retries 429 responses after the announced reset, if any.
func rateLimited(err error) (time.Duration, bool) {
	e, ok := err.(structs.Error)
	if !ok || !e.RateLimited() {
		return 0, false
	}

	if e.Reset > MaxRetryInterval {
		return MaxRetryInterval, true
	}

	return e.Reset, true
}

func responseError(res *http.Response) error {
	if res.StatusCode < 400 {
		return nil
	}

	data, err := ioutil.ReadAll(io.LimitReader(res.Body, 64*1024))
	if err != nil {
		return err
	}

	var e struct {
		Error   string
		Message string
		Sys     struct {
			Id string
		}
	}

	se := structs.Error{Code: res.StatusCode}

	if n, err := strconv.Atoi(res.Header.Get("X-Contentful-RateLimit-Reset")); err == nil && n > 0 {
		se.Reset = time.Duration(n) * time.Second
	}

	if err := json.Unmarshal(data, &e); err == nil {
		se.Id = e.Sys.Id
		se.Message = helpers.CoalesceString(e.Message, e.Error)
	}

	if se.Message == "" {
		se.Message = strings.TrimSpace(string(data))
	}

	if se.Message == "" {
		se.Message = fmt.Sprintf("response status %d", res.StatusCode)
	}

	return se
}

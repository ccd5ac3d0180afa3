package lunarcrushapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"golang.org/x/oauth2"

	"github.com/SnakeO/LunarCrushAPIv4/pkg/envvar"
)

const RestBaseURL = "https://lunarcrush.com/api4"

var _ requestgen.AuthenticatedAPIClient = &RestClient{}
var _ Requester = &RestClient{}

//go:generate mockgen -destination=mock_requester_test.go -package=lunarcrushapi . Requester

// Requester is the part of RestClient the endpoint services depend on.
type Requester interface {
	Request(ctx context.Context, path string, params *Params) (interface{}, error)
	RequestInto(ctx context.Context, path string, params *Params, v interface{}) error
}

type RestClient struct {
	requestgen.BaseAPIClient

	apiKey       string
	encoder      *Encoder
	strictStatus bool

	Topics     *TopicService
	Categories *CategoryService
	Creators   *CreatorService
	Posts      *PostService
	Coins      *CoinService
	Stocks     *StockService
	NFTs       *NFTService
	Searches   *SearchService
	System     *SystemService
}

type Option func(c *RestClient)

// WithHTTPClient replaces the http.Client used for all requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *RestClient) {
		c.HttpClient = httpClient
	}
}

// WithBaseURL points the client at another API root, e.g. a test server.
// It panics when baseURL can not be parsed, the same as NewClient does for
// RestBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *RestClient) {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
		if err != nil {
			panic(err)
		}

		c.BaseURL = u
	}
}

func WithEncoder(encoder *Encoder) Option {
	return func(c *RestClient) {
		c.encoder = encoder
	}
}

// WithStrictStatus makes non-2xx responses fail with *APIError instead of
// being decoded and returned.
func WithStrictStatus() Option {
	return func(c *RestClient) {
		c.strictStatus = true
	}
}

// NewClient creates a client authenticated with apiKey. The key can not be
// changed afterwards.
func NewClient(apiKey string, options ...Option) *RestClient {
	u, err := url.Parse(RestBaseURL)
	if err != nil {
		panic(err)
	}

	// no timeout unless configured, the caller's context bounds the request
	httpClient := &http.Client{}
	if timeout, ok := envvar.Duration("LUNARCRUSH_HTTP_TIMEOUT"); ok {
		httpClient.Timeout = timeout
	}

	client := &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL:    u,
			HttpClient: httpClient,
		},
		apiKey:  apiKey,
		encoder: DefaultEncoder,
	}

	for _, option := range options {
		option(client)
	}

	client.attachServices(client)
	return client
}

func (c *RestClient) attachServices(r Requester) {
	c.Topics = &TopicService{client: r}
	c.Categories = &CategoryService{client: r}
	c.Creators = &CreatorService{client: r}
	c.Posts = &PostService{client: r}
	c.Coins = &CoinService{client: r}
	c.Stocks = &StockService{client: r}
	c.NFTs = &NFTService{client: r}
	c.Searches = &SearchService{client: r}
	c.System = &SystemService{client: r}
}

// BuildURL concatenates the base URL, path and the encoded query. The "?" is
// only appended when the query is non-empty. Path segments are used as given.
func (c *RestClient) BuildURL(path string, query Query) string {
	return c.BaseURL.String() + withQuery(path, query)
}

func withQuery(path string, query Query) string {
	if len(query) == 0 {
		return path
	}

	return path + "?" + query.Encode()
}

// NewRequest creates a request for base URL + refURL. params are appended
// sorted by key (url.Values.Encode); use Request to keep parameter order.
func (c *RestClient) NewRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	rawURL := c.BaseURL.String() + refURL
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(refURL, "?") {
			sep = "&"
		}

		rawURL += sep + params.Encode()
	}

	// every endpoint is a GET with the parameters in the query string
	if payload != nil {
		return nil, errors.Errorf("request payload is not supported, got %T", payload)
	}

	return http.NewRequestWithContext(ctx, method, rawURL, http.NoBody)
}

// NewAuthenticatedRequest creates a request carrying the bearer token.
func (c *RestClient) NewAuthenticatedRequest(
	ctx context.Context, method, refURL string, params url.Values, payload interface{},
) (*http.Request, error) {
	req, err := c.NewRequest(ctx, method, refURL, params, payload)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	token := &oauth2.Token{AccessToken: c.apiKey}
	token.SetAuthHeader(req)
	return req, nil
}

// SendRequest sends req and reads the whole body. The status code is not
// checked unless the client was created with WithStrictStatus.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, &TransportError{
			Method: req.Method,
			URL:    req.URL.String(),
			Err:    errors.Wrap(err, "can not read response body"),
		}
	}

	if c.strictStatus && response.IsError() {
		return response, &APIError{
			URL:        req.URL.String(),
			StatusCode: response.StatusCode,
			Body:       response.Body,
		}
	}

	return response, nil
}

func (c *RestClient) send(ctx context.Context, path string, params *Params) (*requestgen.Response, error) {
	query := c.encoder.Encode(params)
	resource := resourceLabel(path)

	req, err := c.NewAuthenticatedRequest(ctx, http.MethodGet, withQuery(path, query), nil, nil)
	if err != nil {
		recordErrorMetrics(resource, "transport")
		return nil, &TransportError{Method: http.MethodGet, URL: c.BuildURL(path, query), Err: err}
	}

	start := time.Now()
	response, err := c.SendRequest(req)
	duration := time.Since(start)

	if response != nil {
		recordResponseMetrics(resource, response.StatusCode, duration)
		debugf("GET %s -> %d (%s)", req.URL.String(), response.StatusCode, duration)
	}

	if err != nil {
		if IsTransportError(err) {
			recordErrorMetrics(resource, "transport")
		}

		log.WithError(err).Debugf("GET %s failed", req.URL.String())
		return response, err
	}

	return response, nil
}

// Request issues GET base URL + path with the encoded params and returns the
// decoded JSON body. JSON numbers are returned as json.Number.
func (c *RestClient) Request(ctx context.Context, path string, params *Params) (interface{}, error) {
	response, err := c.send(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err := decodeJSON(response.Body, &v); err != nil {
		recordErrorMetrics(resourceLabel(path), "decode")
		return nil, newDecodeError(response, err)
	}

	return v, nil
}

// RequestInto is Request decoding into v.
func (c *RestClient) RequestInto(ctx context.Context, path string, params *Params, v interface{}) error {
	response, err := c.send(ctx, path, params)
	if err != nil {
		return err
	}

	if err := response.DecodeJSON(v); err != nil {
		recordErrorMetrics(resourceLabel(path), "decode")
		return newDecodeError(response, err)
	}

	return nil
}

// RequestValue is Request returning the fastjson parse tree of the body.
func (c *RestClient) RequestValue(ctx context.Context, path string, params *Params) (*fastjson.Value, error) {
	response, err := c.send(ctx, path, params)
	if err != nil {
		return nil, err
	}

	v, err := fastjson.ParseBytes(response.Body)
	if err != nil {
		recordErrorMetrics(resourceLabel(path), "decode")
		return nil, newDecodeError(response, err)
	}

	return v, nil
}

func decodeJSON(body []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		return err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return errors.New("invalid character after top-level value")
	}

	return nil
}

func newDecodeError(response *requestgen.Response, err error) *DecodeError {
	e := &DecodeError{
		StatusCode: response.StatusCode,
		Body:       response.Body,
		Err:        err,
	}

	if response.Request != nil {
		e.URL = response.Request.URL.String()
	}

	return e
}

// Package teaserpaste implements the service.Service interface over the
// TeaserPaste JSON API.
package teaserpaste

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"tpaste/internal/apperror"
	"tpaste/internal/config"
	"tpaste/internal/service"
)

const (
	// APITimeout is the timeout for a single API call.
	APITimeout = 30 * time.Second

	EndpointGetSnippet         = "/getSnippet"
	EndpointGetUserInfo        = "/getUserInfo"
	EndpointUserPublicSnippets = "/getUserPublicSnippets"
	EndpointCreateSnippet      = "/createSnippet"
	EndpointListSnippets       = "/listSnippets"
	EndpointUpdateSnippet      = "/updateSnippet"
	EndpointDeleteSnippet      = "/deleteSnippet"
	EndpointSearchSnippets     = "/searchSnippets"
)

// TokenReader yields the persisted token, if any.
type TokenReader interface {
	Get() (string, bool)
}

// Request describes one API call.
type Request struct {
	Endpoint string
	Method   string
	Body     any    // serialized as JSON when non-nil
	Token    string // overrides every other token source when set
}

// Response is a successful API response.
type Response struct {
	Status int
	Body   []byte
	// JSON reports whether Body parsed as JSON. Non-JSON bodies are kept verbatim.
	JSON bool
}

var _ service.Service = (*Client)(nil)

// Client implements service.Service using the TeaserPaste API.
type Client struct {
	baseURL   string
	override  string
	tokens    TokenReader
	transport http.RoundTripper
	log       zerolog.Logger
}

// New creates a client for cfg.APIBaseURL. The token is taken from
// cfg.Token when set, otherwise from tokens.
func New(cfg *config.Config, tokens TokenReader, log zerolog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		override:  cfg.Token,
		tokens:    tokens,
		transport: http.DefaultTransport,
		log:       log,
	}
}

// NewWithTransport creates a client with a custom base transport (for testing).
func NewWithTransport(baseURL string, tokens TokenReader, transport http.RoundTripper) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokens:    tokens,
		transport: transport,
		log:       zerolog.Nop(),
	}
}

// resolveToken picks the request token, then the --token override, then the store.
func (c *Client) resolveToken(reqToken string) string {
	if reqToken != "" {
		return reqToken
	}
	if c.override != "" {
		return c.override
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Get(); ok {
			return token
		}
	}
	return ""
}

func (c *Client) httpClient(token string) *http.Client {
	if token == "" {
		return &http.Client{Transport: c.transport}
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.transport,
		},
	}
}

// Call performs one request. It never retries.
func (c *Client) Call(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	url := c.baseURL + req.Endpoint
	c.log.Debug().Str("method", req.Method).Str("url", url).Msg("api request")

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		c.log.Debug().RawJSON("body", data).Msg("request body")
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient(c.resolveToken(req.Token)).Do(httpReq)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err)
	}
	c.log.Debug().Int("status", resp.StatusCode).Str("body", string(data)).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyFailure(resp.StatusCode, data)
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   data,
		JSON:   json.Valid(data),
	}, nil
}

// classifyFailure maps an error status and body to the error taxonomy.
func classifyFailure(status int, body []byte) error {
	var payload struct {
		RequiresPassword bool   `json:"requiresPassword"`
		Error            string `json:"error"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apperror.Malformed(status)
	}
	switch {
	case payload.RequiresPassword:
		return apperror.PasswordRequired(status)
	case payload.Error != "":
		return apperror.Server(status, payload.Error)
	case payload.Message != "":
		return apperror.Server(status, payload.Message)
	default:
		return apperror.Malformed(status)
	}
}

// wrapError wraps transport errors with user-friendly messages.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("request failed: %w", err)
}

func decode(resp *Response, v any) error {
	if !resp.JSON {
		return &apperror.AppError{
			Err:     apperror.ErrMalformedResponse,
			Message: "unexpected non-JSON response from server",
			Status:  resp.Status,
		}
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &apperror.AppError{
			Err:     apperror.ErrMalformedResponse,
			Message: fmt.Sprintf("unexpected response shape: %v", err),
			Status:  resp.Status,
		}
	}
	return nil
}

type snippetRef struct {
	SnippetID string `json:"snippetId"`
	Password  string `json:"password,omitempty"`
}

type updateRequest struct {
	SnippetID string          `json:"snippetId"`
	Updates   service.Updates `json:"updates"`
}

// GetSnippet fetches a snippet. A non-JSON success body becomes the content.
func (c *Client) GetSnippet(ctx context.Context, id, password string) (service.Snippet, error) {
	resp, err := c.Call(ctx, Request{
		Endpoint: EndpointGetSnippet,
		Method:   http.MethodPost,
		Body:     snippetRef{SnippetID: id, Password: password},
	})
	if err != nil {
		return service.Snippet{}, err
	}
	if !resp.JSON {
		return service.Snippet{ID: id, Content: string(resp.Body)}, nil
	}
	var s service.Snippet
	if err := decode(resp, &s); err != nil {
		return service.Snippet{}, err
	}
	return s, nil
}

// CreateSnippet stores a new snippet.
func (c *Client) CreateSnippet(ctx context.Context, s service.NewSnippet) (service.Snippet, error) {
	resp, err := c.Call(ctx, Request{
		Endpoint: EndpointCreateSnippet,
		Method:   http.MethodPost,
		Body:     s,
	})
	if err != nil {
		return service.Snippet{}, err
	}
	var created service.Snippet
	if err := decode(resp, &created); err != nil {
		return service.Snippet{}, err
	}
	return created, nil
}

// ListSnippets returns the caller's snippets.
func (c *Client) ListSnippets(ctx context.Context, opts service.ListOptions) ([]service.Snippet, error) {
	return c.snippetList(ctx, EndpointListSnippets, opts)
}

// UpdateSnippet applies updates to a snippet.
func (c *Client) UpdateSnippet(ctx context.Context, id string, updates service.Updates) (service.Snippet, error) {
	resp, err := c.Call(ctx, Request{
		Endpoint: EndpointUpdateSnippet,
		Method:   http.MethodPatch,
		Body:     updateRequest{SnippetID: id, Updates: updates},
	})
	if err != nil {
		return service.Snippet{}, err
	}
	var s service.Snippet
	if err := decode(resp, &s); err != nil {
		return service.Snippet{}, err
	}
	return s, nil
}

// DeleteSnippet deletes a snippet and returns the server's message.
func (c *Client) DeleteSnippet(ctx context.Context, id string) (string, error) {
	resp, err := c.Call(ctx, Request{
		Endpoint: EndpointDeleteSnippet,
		Method:   http.MethodDelete,
		Body:     snippetRef{SnippetID: id},
	})
	if err != nil {
		return "", err
	}
	if !resp.JSON {
		return strings.TrimSpace(string(resp.Body)), nil
	}
	var result struct {
		Message string `json:"message"`
	}
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// SearchSnippets searches public snippets by term.
func (c *Client) SearchSnippets(ctx context.Context, term string) ([]service.Snippet, error) {
	return c.snippetList(ctx, EndpointSearchSnippets, struct {
		Term string `json:"term"`
	}{term})
}

// UserInfo returns the profile of the token's owner.
func (c *Client) UserInfo(ctx context.Context) (service.UserProfile, error) {
	resp, err := c.Call(ctx, Request{
		Endpoint: EndpointGetUserInfo,
		Method:   http.MethodGet,
	})
	if err != nil {
		return service.UserProfile{}, err
	}
	var u service.UserProfile
	if err := decode(resp, &u); err != nil {
		return service.UserProfile{}, err
	}
	return u, nil
}

// UserPublicSnippets returns the public snippets of a user.
func (c *Client) UserPublicSnippets(ctx context.Context, userID string) ([]service.Snippet, error) {
	return c.snippetList(ctx, EndpointUserPublicSnippets, struct {
		UserID string `json:"userId"`
	}{userID})
}

func (c *Client) snippetList(ctx context.Context, endpoint string, body any) ([]service.Snippet, error) {
	resp, err := c.Call(ctx, Request{
		Endpoint: endpoint,
		Method:   http.MethodPost,
		Body:     body,
	})
	if err != nil {
		return nil, err
	}
	var snippets []service.Snippet
	if err := decode(resp, &snippets); err != nil {
		return nil, err
	}
	return snippets, nil
}

package teaserpaste_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpaste/internal/apperror"
	"tpaste/internal/backend/teaserpaste"
	"tpaste/internal/config"
	"tpaste/internal/service"
)

type staticTokens string

func (s staticTokens) Get() (string, bool) { return string(s), s != "" }

// captured records the last request seen by the test server.
type captured struct {
	method string
	path   string
	auth   string
	ctype  string
	body   map[string]any
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		got.ctype = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &got.body)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func newClient(srv *httptest.Server, tokens teaserpaste.TokenReader) *teaserpaste.Client {
	return teaserpaste.NewWithTransport(srv.URL, tokens, http.DefaultTransport)
}

func TestCall_AttachesStoredToken(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"id":"abc"}`)
	c := newClient(srv, staticTokens("priv_stored"))

	_, err := c.Call(context.Background(), teaserpaste.Request{Endpoint: "/getSnippet", Method: http.MethodPost, Body: map[string]string{"snippetId": "abc"}})
	require.NoError(t, err)

	assert.Equal(t, "Bearer priv_stored", got.auth)
	assert.Equal(t, "application/json", got.ctype)
	assert.Equal(t, "/getSnippet", got.path)
	assert.Equal(t, "abc", got.body["snippetId"])
}

func TestCall_RequestTokenOverridesStore(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	c := newClient(srv, staticTokens("priv_stored"))

	_, err := c.Call(context.Background(), teaserpaste.Request{Endpoint: "/getUserInfo", Method: http.MethodGet, Token: "priv_override"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer priv_override", got.auth)
}

func TestCall_ConfigTokenOverridesStore(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)
	cfg := &config.Config{APIBaseURL: srv.URL, Token: "priv_flag"}
	c := teaserpaste.New(cfg, staticTokens("priv_stored"), zerolog.Nop())

	_, err := c.UserInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer priv_flag", got.auth)
	assert.Equal(t, http.MethodGet, got.method)
}

func TestCall_NoTokenNoHeader(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[]`)
	c := newClient(srv, staticTokens(""))

	_, err := c.SearchSnippets(context.Background(), "go")
	require.NoError(t, err)

	assert.Empty(t, got.auth)
	assert.Equal(t, "go", got.body["term"])
}

func TestCall_ServerErrorMessage(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, `{"error":"not found"}`)
	c := newClient(srv, nil)

	_, err := c.GetSnippet(context.Background(), "missing-id", "")
	require.Error(t, err)

	assert.True(t, errors.Is(err, apperror.ErrServer))
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
}

func TestCall_PasswordRequired(t *testing.T) {
	srv, got := newServer(t, http.StatusForbidden, `{"requiresPassword": true}`)
	c := newClient(srv, nil)

	_, err := c.GetSnippet(context.Background(), "locked", "wrong")
	require.Error(t, err)

	assert.True(t, errors.Is(err, apperror.ErrPasswordRequired))
	assert.False(t, errors.Is(err, apperror.ErrServer))
	assert.Contains(t, err.Error(), "--password")
	assert.Equal(t, "wrong", got.body["password"])
}

func TestCall_MalformedErrorBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"html", "<html>Bad Gateway</html>"},
		{"empty", ""},
		{"json without message", `{"ok":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, http.StatusBadGateway, tt.body)
			c := newClient(srv, nil)

			_, err := c.ListSnippets(context.Background(), service.ListOptions{Limit: 20})
			require.Error(t, err)

			assert.True(t, errors.Is(err, apperror.ErrMalformedResponse))
			assert.Equal(t, "unrecognized error (status 502)", err.Error())
		})
	}
}

func TestGetSnippet_RawTextBody(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, "just some text")
	c := newClient(srv, nil)

	s, err := c.GetSnippet(context.Background(), "abc", "")
	require.NoError(t, err)

	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, "just some text", s.Content)
}

func TestCall_NonJSONSuccessKeptVerbatim(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, "plain body\n")
	c := newClient(srv, nil)

	resp, err := c.Call(context.Background(), teaserpaste.Request{Endpoint: "/x", Method: http.MethodGet})
	require.NoError(t, err)

	assert.False(t, resp.JSON)
	assert.Equal(t, "plain body\n", string(resp.Body))
}

func TestCreateSnippet_Body(t *testing.T) {
	srv, got := newServer(t, http.StatusCreated, `{"id":"new1"}`)
	c := newClient(srv, nil)

	created, err := c.CreateSnippet(context.Background(), service.NewSnippet{
		Title:      "T",
		Content:    "C",
		Language:   "plaintext",
		Visibility: "unlisted",
		Tags:       []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "new1", created.ID)
	assert.Equal(t, "/createSnippet", got.path)
	assert.Equal(t, "T", got.body["title"])
	assert.Equal(t, []any{}, got.body["tags"])
	assert.NotContains(t, got.body, "password")
}

func TestUpdateSnippet_Body(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"id":"abc","title":"New"}`)
	c := newClient(srv, nil)

	s, err := c.UpdateSnippet(context.Background(), "abc", service.Updates{"title": "New"})
	require.NoError(t, err)

	assert.Equal(t, "New", s.Title)
	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "abc", got.body["snippetId"])
	assert.Equal(t, map[string]any{"title": "New"}, got.body["updates"])
}

func TestDeleteSnippet(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"message":"Snippet deleted."}`)
	c := newClient(srv, nil)

	msg, err := c.DeleteSnippet(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "Snippet deleted.", msg)
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "abc", got.body["snippetId"])
}

func TestUserPublicSnippets(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[{"id":"s1","title":"One","language":"go"}]`)
	c := newClient(srv, nil)

	snippets, err := c.UserPublicSnippets(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, snippets, 1)
	assert.Equal(t, "One", snippets[0].Title)
	assert.Equal(t, "u1", got.body["userId"])
	assert.Equal(t, "/getUserPublicSnippets", got.path)
}

func TestListSnippets_Body(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[]`)
	c := newClient(srv, nil)

	snippets, err := c.ListSnippets(context.Background(), service.ListOptions{Limit: 5, Visibility: "public"})
	require.NoError(t, err)

	assert.Empty(t, snippets)
	assert.Equal(t, float64(5), got.body["limit"])
	assert.Equal(t, "public", got.body["visibility"])
}

func TestCall_TransportFailure(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	c := newClient(srv, nil)
	srv.Close()

	_, err := c.UserInfo(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

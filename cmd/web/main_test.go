package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexShowsCommand(t *testing.T) {
	h := newRouter(log.New(io.Discard), sshCommand("play.example.com", "2222"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<code>ssh -p 2222 play.example.com</code>")
}

func TestIndexEscapesHost(t *testing.T) {
	h := newRouter(log.New(io.Discard), sshCommand("<b>x</b>", "22"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotContains(t, rec.Body.String(), "<b>x</b>")
	assert.Contains(t, rec.Body.String(), "ssh &lt;b&gt;x&lt;/b&gt;")
}

func TestHealthz(t *testing.T) {
	h := newRouter(log.New(io.Discard), "ssh host")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	h := newRouter(log.New(io.Discard), "ssh host")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSSHCommand(t *testing.T) {
	assert.Equal(t, "ssh host", sshCommand("host", "22"))
	assert.Equal(t, "ssh host", sshCommand("host", ""))
	assert.Equal(t, "ssh -p 2222 host", sshCommand("host", "2222"))
}

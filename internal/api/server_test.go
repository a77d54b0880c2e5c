package api_test

import (
	"io"
	"leavebot/internal/api"
	"leavebot/internal/api/handler/v1handler"
	"leavebot/pkg/logger"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func newTestServer(t *testing.T, opts api.Options) *httptest.Server {
	t.Helper()

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "leavebot_test_total"}))

	srv, err := api.NewServer(api.Deps{Gatherer: registry}, opts)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_Routes(t *testing.T) {
	ts := newTestServer(t, api.Options{
		HandlerOptions: v1handler.Options{LIFFID: "liff-1", BaseURL: "https://bot.example.com"},
	})

	res, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "OK", body)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))

	res, body = get(t, ts.URL+"/webhook")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "OK", body)

	res, body = get(t, ts.URL+"/liff/env.js")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"LIFF_ID":"liff-1"`)

	res, body = get(t, ts.URL+"/liff/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "env.js")

	res, _ = get(t, ts.URL+"/liff/app.js")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "leavebot_test_total")

	res, body = get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "/api/leave")

	res, _ = get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServer_Pprof(t *testing.T) {
	ts := newTestServer(t, api.Options{Pprof: true})

	res, _ := get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_StaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom form"), 0o600))

	ts := newTestServer(t, api.Options{StaticDir: dir})

	res, body := get(t, ts.URL+"/liff/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "custom form", body)
}

func TestServer_MissingStaticDir(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{StaticDir: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}

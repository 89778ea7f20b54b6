package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend serves the handful of routes the CLI tests touch and records
// the Authorization header of each request.
type stubBackend struct {
	mu      sync.Mutex
	auth    []string
	created []map[string]any
}

func (b *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-123",
			"user":  map[string]any{"id": 1, "username": "admin", "role": "ADMIN"},
		})
	})
	mux.HandleFunc("/api/jobs/active", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		_, _ = io.WriteString(w, `[{"id":1,"title":"Library Assistant","status":"ACTIVE"}]`)
	})
	mux.HandleFunc("/api/jobs/5", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Job not found")
	})
	mux.HandleFunc("/api/jobs/7/close", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.created = append(b.created, in)
		id := len(b.created)
		b.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "title": in["title"]})
	})
	return mux
}

func (b *stubBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.auth = append(b.auth, r.Header.Get("Authorization"))
}

// runCLI executes one command line against a fresh root command.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setup(t *testing.T) (*stubBackend, []string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"WORKSTUDY_API_URL", "WORKSTUDY_STORAGE_PATH", "WORKSTUDY_HTTP_TIMEOUT", "WORKSTUDY_LOG_LEVEL", "WORKSTUDY_DEBUG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	b := &stubBackend{}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	storage := filepath.Join(t.TempDir(), "storage.json")
	return b, []string{"--api-url", srv.URL + "/api", "--storage", storage}
}

func TestCLI_LoginFetchLogout(t *testing.T) {
	b, global := setup(t)

	out, err := runCLI(t, append([]string{"jobs", "list", "--active"}, global...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Library Assistant"`)

	out, err = runCLI(t, append([]string{"login", "-u", "admin", "-p", "admin123"}, global...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"home": "/admin"`)

	out, err = runCLI(t, append([]string{"whoami"}, global...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "admin"`)

	_, err = runCLI(t, append([]string{"fetch", "/jobs/5"}, global...)...)
	require.Error(t, err)
	assert.Equal(t, "Job not found", err.Error())

	out, err = runCLI(t, append([]string{"jobs", "close", "7"}, global...)...)
	require.NoError(t, err)
	assert.Equal(t, "null", strings.TrimSpace(out))

	_, err = runCLI(t, append([]string{"logout"}, global...)...)
	require.NoError(t, err)
	_, err = runCLI(t, append([]string{"whoami"}, global...)...)
	require.EqualError(t, err, "not logged in")

	_, err = runCLI(t, append([]string{"jobs", "list", "--active"}, global...)...)
	require.NoError(t, err)

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Equal(t, []string{"", "Bearer tok-123", "Bearer tok-123", ""}, b.auth)
}

func TestCLI_CreateValidatesLocally(t *testing.T) {
	b, global := setup(t)

	_, err := runCLI(t, append([]string{"jobs", "create", "--title", "Tutor", "--department", "Math",
		"--hourly-rate", "15", "--deadline", "2026-12-01"}, global...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
	assert.Empty(t, b.created)

	out, err := runCLI(t, append([]string{"jobs", "create", "--title", "Tutor", "--department", "Math",
		"--description", "Calculus drop-in hours", "--location", "Math Center",
		"--hourly-rate", "15", "--max-hours", "45", "--deadline", "2026-12-01"}, global...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Tutor"`)
	require.Len(t, b.created, 1)
	assert.EqualValues(t, 45, b.created[0]["maxHoursPerWeek"])
	assert.EqualValues(t, 1, b.created[0]["totalPositions"])
}

func TestCLI_Import(t *testing.T) {
	b, global := setup(t)
	t.Setenv("SQ_BASE_BACKOFF", "1ms")

	file := filepath.Join(t.TempDir(), "postings.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
- title: Lifeguard
  description: Pool supervision
  department: Recreation
  location: Aquatics Center
  hourlyRate: 16
  applicationDeadline: "2026-11-30"
- title: Shelver
  description: Reshelve returns
  department: Library
  location: Main Library
  hourlyRate: 14
  applicationDeadline: "2026-12-15"
`), 0o600))

	out, err := runCLI(t, append([]string{"jobs", "import", file}, global...)...)
	require.NoError(t, err)

	var report struct {
		Created int `json:"created"`
		Failed  int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Created)
	assert.Zero(t, report.Failed)
	assert.Len(t, b.created, 2)
}

func TestCLI_FetchRejectsBadInput(t *testing.T) {
	_, global := setup(t)

	_, err := runCLI(t, append([]string{"fetch", "/jobs", "-X", "POST", "--data", "{oops"}, global...)...)
	require.EqualError(t, err, "--data is not valid JSON")

	_, err = runCLI(t, append([]string{"jobs", "get", "abc"}, global...)...)
	require.EqualError(t, err, `invalid id "abc"`)
}

func TestCLI_MetricsToStderr(t *testing.T) {
	_, global := setup(t)

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"jobs", "list", "--active", "--metrics"}, global...))
	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "workstudy_client_requests_total")
}

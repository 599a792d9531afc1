package dyndns

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/burrowlabs/burrow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() types.ProviderEntry {
	return types.ProviderEntry{
		Username:  "alice",
		Password:  "s3cret",
		Hostnames: []types.Hostname{"a.example.com", "b.example.com"},
	}
}

// TestUpdateRequestShape tests the wire shape of an update request
func TestUpdateRequestShape(t *testing.T) {
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		_, _ = w.Write([]byte("good 9.9.9.9\ngood 9.9.9.9"))
	}))
	defer server.Close()

	client := NewClient(Config{
		UpdateURL: server.URL + "/nic/update",
		Version:   "1.2.3",
		Contact:   "ops@example.com",
	})

	lines, err := client.Update(context.Background(), testEntry(),
		[]types.Hostname{"a.example.com", "b.example.com"}, "9.9.9.9")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/nic/update", gotReq.URL.Path)
	assert.Equal(t, "a.example.com,b.example.com", gotReq.URL.Query().Get("hostname"))
	assert.Equal(t, "9.9.9.9", gotReq.URL.Query().Get("myip"))

	user, pass, ok := gotReq.BasicAuth()
	require.True(t, ok, "request must carry basic auth")
	assert.Equal(t, "alice", user)
	assert.Equal(t, "s3cret", pass)

	ua := gotReq.Header.Get("User-Agent")
	assert.True(t, strings.HasPrefix(ua, "burrow/1.2.3"), "user agent %q must carry name and version", ua)
	assert.Contains(t, ua, "ops@example.com", "user agent must carry operator contact")
}

// TestUpdateOmitsMyIPWhenEmpty tests that myip is only sent when set
func TestUpdateOmitsMyIPWhenEmpty(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte("good 9.9.9.9"))
	}))
	defer server.Close()

	client := NewClient(Config{UpdateURL: server.URL, Version: "dev"})
	_, err := client.Update(context.Background(), testEntry(), []types.Hostname{"a.example.com"}, "")
	require.NoError(t, err)
	assert.NotContains(t, query, "myip")
}

// TestUpdateNonSuccessStatus tests that a non-200 response is an error
func TestUpdateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{UpdateURL: server.URL, Version: "dev"})
	lines, err := client.Update(context.Background(), testEntry(), []types.Hostname{"a.example.com"}, "")
	assert.Error(t, err)
	assert.Nil(t, lines)
}

// TestCurrentIP tests discovery endpoint handling
func TestCurrentIP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  203.0.113.7\n"))
	}))
	defer server.Close()

	client := NewClient(Config{CheckIPURL: server.URL, Version: "dev"})
	addr, err := client.CurrentIP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.IPAddress("203.0.113.7"), addr, "body must be trimmed")
}

// TestCurrentIPNonSuccessStatus tests discovery failure handling
func TestCurrentIPNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{CheckIPURL: server.URL, Version: "dev"})
	addr, err := client.CurrentIP(context.Background())
	assert.Error(t, err)
	assert.Empty(t, addr)
}

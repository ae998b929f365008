package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/charseq/pkg/logging"
	"github.com/ssargent/charseq/pkg/textstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupTestServer(t *testing.T, config ServerConfig) (*Server, http.Handler) {
	t.Helper()

	store, err := textstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger, err := logging.New(io.Discard, "debug", "text")
	require.NoError(t, err)

	server := NewServer(store, config, NewMetrics(prometheus.NewRegistry()), logger)
	return server, NewRouter(server)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body io.Reader) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env testEnvelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func doJSON(t *testing.T, h http.Handler, method, path string, payload interface{}) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return doRequest(t, h, method, path, bytes.NewReader(data))
}

func TestServer_handleHealth(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})

	w, env := doRequest(t, h, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "healthy", data["status"])
}

func TestServer_RequiresAPIKey(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{APIKey: "secret"})

	w, env := doRequest(t, h, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_handleHex(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})

	w, env := doRequest(t, h, "POST", "/api/v1/hex", bytes.NewReader([]byte{0x00, 0x0A, 0xFF}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp HexResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "000AFF", resp.Hex)
	assert.Equal(t, 3, resp.Length)
}

func TestServer_handleHex_TooLarge(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{MaxBodyBytes: 4})

	w, env := doRequest(t, h, "POST", "/api/v1/hex", bytes.NewReader(make([]byte, 16)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestServer_handleIntEncode(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})

	tests := []struct {
		name           string
		request        IntEncodeRequest
		expectedStatus int
		expectedHex    string
	}{
		{"int32 big endian", IntEncodeRequest{Value: 0x01020304, Width: 32}, http.StatusOK, "01020304"},
		{"int32 negative", IntEncodeRequest{Value: -1, Width: 32, Order: "big"}, http.StatusOK, "FFFFFFFF"},
		{"int16 big endian", IntEncodeRequest{Value: 0x1234, Width: 16}, http.StatusOK, "1234"},
		{"int16 little endian", IntEncodeRequest{Value: 0x1234, Width: 16, Order: "little"}, http.StatusOK, "3412"},
		{"int16 overflow", IntEncodeRequest{Value: 40000, Width: 16}, http.StatusBadRequest, ""},
		{"int32 little endian unsupported", IntEncodeRequest{Value: 1, Width: 32, Order: "little"}, http.StatusBadRequest, ""},
		{"bad width", IntEncodeRequest{Value: 1, Width: 8}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, h, "POST", "/api/v1/ints/encode", tt.request)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.False(t, env.Success)
				return
			}

			var resp IntResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.Equal(t, tt.expectedHex, resp.Hex)
			assert.Equal(t, tt.request.Value, resp.Value)
		})
	}
}

func TestServer_handleIntDecode(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})

	tests := []struct {
		name           string
		request        IntDecodeRequest
		expectedStatus int
		expectedValue  int64
	}{
		{"int32 at offset", IntDecodeRequest{Hex: "AA01020304", Offset: 1, Width: 32}, http.StatusOK, 0x01020304},
		{"int16 little endian", IntDecodeRequest{Hex: "3412", Width: 16, Order: "little"}, http.StatusOK, 0x1234},
		{"int16 sign", IntDecodeRequest{Hex: "FFFE", Width: 16}, http.StatusOK, -2},
		{"out of bounds", IntDecodeRequest{Hex: "0102", Offset: 1, Width: 16}, http.StatusBadRequest, 0},
		{"invalid hex", IntDecodeRequest{Hex: "XYZ", Width: 16}, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, h, "POST", "/api/v1/ints/decode", tt.request)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.False(t, env.Success)
				return
			}

			var resp IntResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.Equal(t, tt.expectedValue, resp.Value)
		})
	}
}

func TestServer_handleConcat(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{BuilderCapacity: 1})

	w, env := doJSON(t, h, "POST", "/api/v1/texts/concat", ConcatRequest{
		Fragments: []string{"ab", "", "cd", "é"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp TextResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "abcdé", resp.Text)
	assert.Equal(t, 5, resp.Length)
	assert.Empty(t, resp.ID)
}

func TestServer_handleCompare(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})

	tests := []struct {
		name    string
		a, b    string
		compare int
		equal   bool
	}{
		{"equal", "abc", "abc", 0, true},
		{"mismatch", "abd", "abc", -1, false},
		{"prefix", "ab", "abc", 1, false},
		{"extension", "abc", "ab", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, h, "POST", "/api/v1/texts/compare", CompareRequest{A: tt.a, B: tt.b})
			require.Equal(t, http.StatusOK, w.Code)

			var resp CompareResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.Equal(t, tt.compare, resp.Compare)
			assert.Equal(t, tt.equal, resp.Equal)
		})
	}
}

func TestServer_InvalidJSON(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})

	w, env := doRequest(t, h, "POST", "/api/v1/texts/compare", strings.NewReader("{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON in request body", env.Error)
}

func TestServer_TextLifecycle(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})

	// Create
	w, env := doJSON(t, h, "POST", "/api/v1/texts", TextRequest{Text: "hello"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created TextResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "hello", created.Text)
	assert.Equal(t, 5, created.Length)
	_, err := ksuid.Parse(created.ID)
	require.NoError(t, err)

	// Read
	w, env = doRequest(t, h, "GET", "/api/v1/texts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched TextResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created, fetched)

	// Update
	w, env = doJSON(t, h, "PUT", "/api/v1/texts/"+created.ID, TextRequest{Text: "goodbye"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated TextResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "goodbye", updated.Text)

	// List
	w, env = doRequest(t, h, "GET", "/api/v1/texts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		IDs   []string `json:"ids"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Equal(t, []string{created.ID}, listed.IDs)
	assert.Equal(t, 1, listed.Count)

	// Delete
	w, _ = doRequest(t, h, "DELETE", "/api/v1/texts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, h, "GET", "/api/v1/texts/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestServer_TextErrors(t *testing.T) {
	_, h := setupTestServer(t, ServerConfig{})
	missing := ksuid.New().String()

	tests := []struct {
		name           string
		method         string
		path           string
		body           io.Reader
		expectedStatus int
	}{
		{"get bad id", "GET", "/api/v1/texts/not-a-ksuid", nil, http.StatusBadRequest},
		{"get missing", "GET", "/api/v1/texts/" + missing, nil, http.StatusNotFound},
		{"update missing", "PUT", "/api/v1/texts/" + missing, strings.NewReader(`{"text":"x"}`), http.StatusNotFound},
		{"delete missing", "DELETE", "/api/v1/texts/" + missing, nil, http.StatusNotFound},
		{"delete bad id", "DELETE", "/api/v1/texts/zzz", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.False(t, env.Success)
		})
	}
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/hunbatz/internal/analyzer"
	"github.com/wgomg/hunbatz/internal/config"
	"github.com/wgomg/hunbatz/internal/extract"
	"github.com/wgomg/hunbatz/internal/utils"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Extract: config.ExtractConfig{WorkerCount: 2, MaxFileSizeBytes: 1 << 20},
	}
	logger := utils.NewDiscardLogger()
	service := analyzer.NewService(
		logger,
		utils.NewDocumentCache(),
		extract.NewFileExtractor(cfg.Extract.MaxFileSizeBytes),
		cfg,
	)

	handler := NewHandler(logger, service, cfg)

	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)

	server := httptest.NewServer(WithRequestID(mux))
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response, data any) {
	t.Helper()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "success", env.Status)
	require.NoError(t, json.Unmarshal(env.Data, data))
}

func TestHandleCompare(t *testing.T) {
	server := newTestServer(t)

	payload := ComparePayload{
		Reference: NamedTextPayload{Name: "original", Text: "the cat sat on the mat"},
		Candidates: []NamedTextPayload{
			{Name: "copy", Text: "the cat sat on the mat"},
			{Name: "other", Text: "completely different words entirely"},
		},
	}

	resp := postJSON(t, server.URL+"/compare", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var result CompareResponse
	decodeEnvelope(t, resp, &result)

	assert.Equal(t, "original", result.Reference.Name)
	assert.Equal(t, 6, result.Reference.WordCount)
	assert.Equal(t, 5, result.Reference.UniqueWordCount)

	require.Len(t, result.Results, 2)
	assert.Equal(t, "copy", result.Results[0].Name)
	assert.InDelta(t, 100.0, result.Results[0].Score, 1e-9)
	assert.Equal(t, "High Similarity", result.Results[0].Bucket)
	assert.Equal(t, "other", result.Results[1].Name)
	assert.InDelta(t, 0.0, result.Results[1].Score, 1e-9)
	assert.Equal(t, "Low Similarity", result.Results[1].Bucket)
}

func TestHandleCompareDefaultsNames(t *testing.T) {
	server := newTestServer(t)

	payload := ComparePayload{
		Reference:  NamedTextPayload{Text: "a b c"},
		Candidates: []NamedTextPayload{{Text: "a b"}},
	}

	resp := postJSON(t, server.URL+"/compare", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result CompareResponse
	decodeEnvelope(t, resp, &result)

	assert.Equal(t, "reference", result.Reference.Name)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "candidate-1", result.Results[0].Name)
}

func TestHandleCompareNoCandidates(t *testing.T) {
	server := newTestServer(t)

	payload := ComparePayload{
		Reference: NamedTextPayload{Name: "ref", Text: "a b c"},
	}

	resp := postJSON(t, server.URL+"/compare", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCompareRejectsWrongContentType(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/compare", "text/plain", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestHandleMatrix(t *testing.T) {
	server := newTestServer(t)

	payload := MatrixPayload{
		Documents: []NamedTextPayload{
			{Name: "doc0", Text: "a b c"},
			{Name: "doc1", Text: "a b d"},
			{Name: "doc2", Text: "x y z"},
		},
	}

	resp := postJSON(t, server.URL+"/matrix", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result MatrixResponse
	decodeEnvelope(t, resp, &result)

	assert.Equal(t, []string{"doc0", "doc1", "doc2"}, result.Names)
	require.Len(t, result.Matrix, 3)
	assert.InDelta(t, 100.0, result.Matrix[0][0], 1e-9)
	assert.InDelta(t, 50.0, result.Matrix[0][1], 1e-9)
	assert.InDelta(t, result.Matrix[1][0], result.Matrix[0][1], 1e-9)

	require.Len(t, result.Documents, 3)
	assert.Equal(t, "doc0", result.Documents[0].Name)
	assert.InDelta(t, 25.0, result.Documents[0].AverageSimilarity, 1e-9)
	assert.Equal(t, "doc2", result.Documents[2].Name)
}

func TestHandleMatrixTooFewDocuments(t *testing.T) {
	server := newTestServer(t)

	payload := MatrixPayload{
		Documents: []NamedTextPayload{{Name: "solo", Text: "a b c"}},
	}

	resp := postJSON(t, server.URL+"/matrix", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoutesRejectWrongMethod(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/compare")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npo-hub-be/pkg/llm"
)

func newTestProvider(srvURL string, stream bool) *GeminiProvider {
	p := NewGeminiProvider("test-key", "", stream)
	p.BaseURL = srvURL
	return p
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/gemini-1.5-flash-latest:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "what is an NPO?", req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(GenerateContentResponse{
			Candidates: []Candidate{{
				Content: Content{Role: "model", Parts: []Part{{Text: "A non-profit "}, {Text: "organization."}}},
			}},
		})
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, false)
	answer, err := p.Generate(context.Background(), "what is an NPO?")
	require.NoError(t, err)
	assert.Equal(t, "A non-profit organization.", answer)
}

func TestChatMapsAssistantRoleToModel(t *testing.T) {
	var req generateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(GenerateContentResponse{
			Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "ok"}}}}},
		})
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, false)
	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "thanks"},
	})
	require.NoError(t, err)

	require.Len(t, req.Contents, 3)
	assert.Equal(t, "user", req.Contents[0].Role)
	assert.Equal(t, "model", req.Contents[1].Role)
	assert.Equal(t, "user", req.Contents[2].Role)
}

func TestStreamModeJoinsChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/gemini-1.5-flash-latest:streamGenerateContent", r.URL.Path)
		json.NewEncoder(w).Encode([]GenerateContentResponse{
			{Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "part one, "}}}}}},
			{Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "part two"}}}}}},
		})
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, true)
	answer, err := p.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "part one, part two", answer)
}

func TestGenerateNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "key invalid"}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, false)
	_, err := p.Generate(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code 403")
	assert.Contains(t, err.Error(), "key invalid")
}

func TestOptionsOverrideModelAndConfig(t *testing.T) {
	var gotPath string
	var req generateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(GenerateContentResponse{})
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, false)
	_, err := p.Generate(context.Background(), "q",
		llm.WithModel("gemini-1.5-pro"),
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(256),
	)
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", gotPath)
	require.NotNil(t, req.GenerationConfig)
	assert.Equal(t, 0.2, req.GenerationConfig.Temperature)
	assert.Equal(t, 256, req.GenerationConfig.MaxOutputTokens)
}

func TestResponseTextEmptyCandidates(t *testing.T) {
	res := &GenerateContentResponse{}
	assert.Equal(t, "", res.Text())
}

// Package gemini implements llm.LLMProvider against Google's hosted
// generative-language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"npo-hub-be/pkg/llm"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash-latest"
)

type GeminiProvider struct {
	APIKey    string
	BaseURL   string
	ModelName string
	// Stream selects the streaming endpoint. The full answer is still
	// returned in one piece; chunks are joined client-side.
	Stream bool
	Client *http.Client
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string, stream bool) *GeminiProvider {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiProvider{
		APIKey:    apiKey,
		BaseURL:   defaultBaseURL,
		ModelName: modelName,
		Stream:    stream,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (wire format of the generativelanguage API) ---

type generateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateContentResponse is the provider-defined raw response. Callers
// that need more than the answer text (finish reason, token counts) read
// it directly.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
	Usage      *Usage      `json:"usageMetadata,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type Usage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// Text returns the concatenated text parts of the first candidate.
func (r *GenerateContentResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, part := range r.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out
}

// --- Interface Implementation ---

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	contents := make([]Content, len(history))
	for i, msg := range history {
		// Gemini only knows "user" and "model" roles.
		role := "user"
		if msg.Role == "assistant" || msg.Role == "model" {
			role = "model"
		}
		contents[i] = Content{
			Role:  role,
			Parts: []Part{{Text: msg.Content}},
		}
	}

	responses, err := p.generate(ctx, contents, options)
	if err != nil {
		return "", err
	}

	var answer string
	for _, res := range responses {
		answer += res.Text()
	}
	return answer, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

// GenerateContent sends a single prompt and returns the raw provider
// responses (one element in non-streaming mode, one per chunk otherwise).
func (p *GeminiProvider) GenerateContent(ctx context.Context, promptText string, opts ...llm.Option) ([]GenerateContentResponse, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}
	contents := []Content{{Role: "user", Parts: []Part{{Text: promptText}}}}
	return p.generate(ctx, contents, options)
}

func (p *GeminiProvider) generate(ctx context.Context, contents []Content, options *llm.Options) ([]GenerateContentResponse, error) {
	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := generateContentRequest{Contents: contents}
	if options.Temperature > 0 || options.MaxTokens > 0 {
		reqPayload.GenerationConfig = &generationConfig{
			Temperature:     options.Temperature,
			MaxOutputTokens: options.MaxTokens,
		}
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	method := "generateContent"
	if p.Stream {
		method = "streamGenerateContent"
	}
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:%s", p.BaseURL, model, method)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(bodyBytes))
	}

	// The streaming endpoint returns a JSON array of chunk responses; the
	// blocking endpoint returns a single object.
	if p.Stream {
		var chunks []GenerateContentResponse
		if err := json.Unmarshal(bodyBytes, &chunks); err != nil {
			return nil, fmt.Errorf("unmarshal stream response: %w", err)
		}
		return chunks, nil
	}

	var single GenerateContentResponse
	if err := json.Unmarshal(bodyBytes, &single); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return []GenerateContentResponse{single}, nil
}

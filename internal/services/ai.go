package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/obaspub/scholarsite/backend/internal/config"
	"github.com/obaspub/scholarsite/backend/pkg/logger"
	"github.com/ollama/ollama/api"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

const (
	titleSuggestionCount = 3
	topicSuggestionCount = 5
)

// SuggestionService produces short lists of suggested strings from a
// hosted generative model, constrained to a fixed JSON shape.
type SuggestionService struct {
	config *config.AIConfig
}

func NewSuggestionService(cfg *config.AIConfig) *SuggestionService {
	return &SuggestionService{config: cfg}
}

// GenerateOptimizedTitles suggests three journal-ready titles for a
// manuscript from its draft title and abstract.
func (s *SuggestionService) GenerateOptimizedTitles(ctx context.Context, draftTitle, abstract string) ([]string, error) {
	prompt := fmt.Sprintf(`I have an academic manuscript.
Draft Title: %q
Abstract: %q

Please generate %d high-impact, professional academic titles suitable for reputable international journals (e.g., Elsevier, Wiley).
The titles should be concise, engaging, and accurately reflect the research.`, draftTitle, abstract, titleSuggestionCount)

	titles, err := s.generateList(ctx, prompt, "titles", titleSuggestionCount)
	if err != nil {
		logger.Error().Err(err).Msg("title suggestion failed")
		return nil, fmt.Errorf("failed to generate titles: %w", err)
	}
	return titles, nil
}

// GenerateBlogTopics suggests five blog post titles around a theme.
func (s *SuggestionService) GenerateBlogTopics(ctx context.Context, theme string) ([]string, error) {
	prompt := fmt.Sprintf(`Topic: %q
Target Audience: Academic researchers and scholars in Nigeria/Africa.

Generate %d engaging, professional blog post titles for an academic publication service website.
The titles should be educational, catchy, and relevant to publishing in international journals.`, theme, topicSuggestionCount)

	topics, err := s.generateList(ctx, prompt, "topics", topicSuggestionCount)
	if err != nil {
		logger.Error().Err(err).Msg("topic suggestion failed")
		return nil, fmt.Errorf("failed to generate blog topics: %w", err)
	}
	return topics, nil
}

// generateList runs the prompt against the configured provider and
// returns the string array found under field in the JSON response.
func (s *SuggestionService) generateList(ctx context.Context, prompt, field string, count int) ([]string, error) {
	logger.Debugf("[AI] provider=%s model=%s field=%s", s.config.Provider, s.config.Model, field)

	var raw string
	var err error

	switch s.config.Provider {
	case "anthropic":
		raw, err = s.callAnthropic(ctx, jsonInstruction(prompt, field, count))
	case "ollama":
		raw, err = s.callOllama(ctx, jsonInstruction(prompt, field, count))
	case "azure":
		raw, err = s.callAzure(ctx, prompt)
	case "openai":
		raw, err = s.callOpenAI(ctx, prompt)
	default:
		// gemini is the default provider
		raw, err = s.callGemini(ctx, prompt, field)
	}
	if err != nil {
		return nil, err
	}

	return parseSuggestions(raw, field), nil
}

// jsonInstruction appends an explicit output-shape instruction for
// providers without native schema-constrained responses.
func jsonInstruction(prompt, field string, count int) string {
	return fmt.Sprintf(`%s

Respond with only a JSON object of the form {"%s": ["..."]} containing exactly %d strings. No prose, no markdown.`, prompt, field, count)
}

// parseSuggestions unwraps {"<field>": [...]} into a string slice. An
// empty or shapeless response yields an empty list rather than an error;
// the caller treats that as "no suggestions".
func parseSuggestions(raw, field string) []string {
	text := stripCodeFence(strings.TrimSpace(raw))
	if text == "" {
		return []string{}
	}

	var payload map[string][]string
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		logger.Warn().Str("field", field).Msg("unparseable suggestion payload")
		return []string{}
	}
	if payload[field] == nil {
		return []string{}
	}
	return payload[field]
}

// stripCodeFence removes a surrounding markdown code fence, which some
// providers add even when told not to.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// callGemini uses the native SDK with a schema-constrained JSON response.
func (s *SuggestionService) callGemini(ctx context.Context, prompt, field string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: s.config.APIKey,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini client error: %w", err)
	}

	model := s.config.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				field: {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{field},
		},
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return resp.Text(), nil
}

// callOpenAI handles OpenAI and OpenAI-compatible endpoints.
func (s *SuggestionService) callOpenAI(ctx context.Context, prompt string) (string, error) {
	clientConfig := openai.DefaultConfig(s.config.APIKey)
	if s.config.BaseURL != "" {
		clientConfig.BaseURL = s.config.BaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	model := s.config.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

// callAzure handles Azure OpenAI deployments. Model is the deployment name.
func (s *SuggestionService) callAzure(ctx context.Context, prompt string) (string, error) {
	clientConfig := openai.DefaultAzureConfig(s.config.APIKey, s.config.BaseURL)
	client := openai.NewClientWithConfig(clientConfig)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("Azure OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from Azure OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}

// callAnthropic handles the Anthropic API using the native SDK.
func (s *SuggestionService) callAnthropic(ctx context.Context, prompt string) (string, error) {
	client := anthropic.NewClient(
		option.WithAPIKey(s.config.APIKey),
	)

	model := s.config.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	return content, nil
}

// callOllama handles a local Ollama server using the native SDK.
func (s *SuggestionService) callOllama(ctx context.Context, prompt string) (string, error) {
	baseURL := s.config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid Ollama base URL: %w", err)
	}
	client := api.NewClient(u, http.DefaultClient)

	model := s.config.Model
	if model == "" {
		model = "llama3"
	}

	var content strings.Builder
	err = client.Chat(ctx, &api.ChatRequest{
		Model: model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Format: json.RawMessage(`"json"`),
	}, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("Ollama API error: %w", err)
	}

	return content.String(), nil
}

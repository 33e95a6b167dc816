package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/config"
	"github.com/map-memoir/backend/internal/domain"
	"github.com/map-memoir/backend/internal/domain/repository"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client - клиент OpenAI API: chat completions для текста и audio/speech для озвучки
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	ttsModel   string
	logger     *zap.Logger
}

func NewClient(cfg *config.OpenAIConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		ttsModel: cfg.TTSModel,
		logger:   logger,
	}
}

func (c *Client) Name() string {
	return "openai"
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate выполняет chat completion и возвращает текст первого варианта
func (c *Client) Generate(ctx context.Context, prompt string, opts repository.GenerationOptions) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("OpenAI request failed", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenAI API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))
		return "", fmt.Errorf("openai API error: status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

type speechRequest struct {
	Model string  `json:"model"`
	Input string  `json:"input"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed,omitempty"`
}

// Synthesize генерирует MP3 через endpoint audio/speech
func (c *Client) Synthesize(ctx context.Context, text string, profile domain.VoiceProfile) (*domain.SpeechResult, error) {
	voice := profile.VoiceID
	if voice == "" {
		voice = "alloy"
	}

	payload := speechRequest{
		Model: c.ttsModel,
		Input: text,
		Voice: voice,
		Speed: profile.SpeakingRate,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("OpenAI TTS request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenAI TTS API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))
		return nil, fmt.Errorf("openai TTS API error: status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio body: %w", err)
	}

	return &domain.SpeechResult{
		Audio:    audio,
		MIMEType: "audio/mpeg",
		Provider: c.Name(),
		Voice:    voice,
	}, nil
}

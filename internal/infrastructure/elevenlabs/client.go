package elevenlabs

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
)

const defaultBaseURL = "https://api.elevenlabs.io/v1"

// Client - основной TTS-провайдер поверх ElevenLabs text-to-speech API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	modelID    string
	logger     *zap.Logger
}

func NewClient(cfg *config.ElevenLabsConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		modelID: cfg.ModelID,
		logger:  logger,
	}
}

func (c *Client) Name() string {
	return "elevenlabs"
}

type ttsRequest struct {
	Text          string         `json:"text"`
	ModelID       string         `json:"model_id,omitempty"`
	VoiceSettings *voiceSettings `json:"voice_settings,omitempty"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize генерирует MP3 для указанного голоса.
// ElevenLabs адресует голос в пути запроса, не в теле.
func (c *Client) Synthesize(ctx context.Context, text string, profile domain.VoiceProfile) (*domain.SpeechResult, error) {
	voice := profile.VoiceID
	if voice == "" {
		return nil, fmt.Errorf("voice id is required")
	}

	payload := ttsRequest{
		Text:    text,
		ModelID: c.modelID,
		VoiceSettings: &voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, voice)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("ElevenLabs request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("ElevenLabs API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))
		return nil, fmt.Errorf("elevenlabs API error: status %d", resp.StatusCode)
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

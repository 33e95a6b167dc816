package dto

// SynthesizeSpeechRequest - запрос озвучивания текста
type SynthesizeSpeechRequest struct {
	Text  string `json:"text" validate:"required,min=1"`
	Theme string `json:"theme"`
	Voice string `json:"voice"`
}

// SynthesizeSpeechResponse - аудио в base64 с метаданными провайдера
type SynthesizeSpeechResponse struct {
	AudioBase64 string `json:"audio_base64"`
	MIMEType    string `json:"mime_type"`
	Provider    string `json:"provider"`
	Voice       string `json:"voice"`
	TextLength  int    `json:"text_length"`
}

// VoiceOption - доступный голос с привязкой к теме истории
type VoiceOption struct {
	Theme   string `json:"theme"`
	VoiceID string `json:"voice_id"`
}

// ListVoicesResponse - доступные голосовые профили
type ListVoicesResponse struct {
	Voices []VoiceOption `json:"voices"`
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/tieubaoca/pdf-qa-be/types"
	"google.golang.org/api/option"
)

type GeminiService struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, settings types.GenerationSettings, timeout time.Duration) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(settings.Temperature)
	model.SetTopK(settings.TopK)
	model.SetTopP(settings.TopP)
	model.SetMaxOutputTokens(settings.MaxOutputTokens)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockLowAndAbove},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockLowAndAbove},
	}

	return &GeminiService{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// Ask sends the document text and question to Gemini and normalizes the
// completion into the structured answer object. The first turn carries the
// document payload, the output-format instruction and the question; the
// question is then sent again as the live message. The duplication is
// intentional, it grounds the model on the question before answering it.
func (s *GeminiService) Ask(ctx context.Context, documentText, question string) (map[string]any, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := documentPayload(documentText)
	if err != nil {
		return nil, false, err
	}

	chat := s.model.StartChat()
	chat.History = []*genai.Content{
		{
			Role: "user",
			Parts: []genai.Part{
				genai.Text(payload),
				genai.Text(answerInstruction),
				genai.Text(question),
			},
		},
	}

	resp, err := chat.SendMessage(ctx, genai.Text(question))
	if err != nil {
		return nil, false, err
	}
	if len(resp.Candidates) == 0 {
		return nil, false, errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					content += string(text)
				}
			}
		}
	}

	answer, degraded := NormalizeAnswer(content)
	return answer, degraded, nil
}

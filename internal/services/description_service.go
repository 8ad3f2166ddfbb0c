package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultGeminiBaseURL is the production endpoint of the Gemini REST API.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

const geminiModel = "gemini-2.5-flash"

// DescriptionService drafts a lost-and-found post description from a title
// and an optional photo by calling the Gemini text-generation API. It never
// fails hard: without an API key it synthesizes a local placeholder, and a
// failed call degrades to a prompt asking the user to write the text
// themselves.
type DescriptionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewDescriptionService creates a DescriptionService. An empty baseURL
// selects the production Gemini endpoint; an empty apiKey disables remote
// calls entirely.
func NewDescriptionService(apiKey, baseURL string) *DescriptionService {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	return &DescriptionService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Request/response shapes of the generateContent call, reduced to the fields
// this service uses.

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64-encoded image bytes
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateDescription produces a suggested description for a post titled
// judul. imageData, when non-empty, is a base64-encoded photo of the item
// with the given MIME type and is sent alongside the prompt.
func (s *DescriptionService) GenerateDescription(judul, imageData, mimeType string) string {
	if s.apiKey == "" {
		return fmt.Sprintf("AI suggestion could not be generated. This is a great opportunity to write a detailed description for: %s", judul)
	}

	prompt := fmt.Sprintf(
		"Based on the title %q and the provided image, write a detailed and friendly description for a lost and found post at a university. Be descriptive and helpful. Mention key visual details. Keep it concise, around 2-4 sentences.",
		judul,
	)

	var parts []geminiPart
	if imageData != "" {
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{MimeType: mimeType, Data: imageData}})
	}
	parts = append(parts, geminiPart{Text: prompt})

	text, err := s.generateContent(geminiRequest{Contents: []geminiContent{{Parts: parts}}})
	if err != nil {
		log.Printf("Error calling Gemini API: %v", err)
		return fmt.Sprintf("Error generating description. Please write one manually for: %s", judul)
	}
	return text
}

func (s *DescriptionService) generateContent(req geminiRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, geminiModel, s.apiKey)
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("response contained no candidates")
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"lostfound/internal/services"
)

func TestDescriptionService_NoAPIKeyFallsBackToPlaceholder(t *testing.T) {
	service := services.NewDescriptionService("", "")

	text := service.GenerateDescription("Dompet Hilang", "", "")
	assert.Contains(t, text, "Dompet Hilang")
	assert.Contains(t, text, "AI suggestion could not be generated")
}

func TestDescriptionService_GeneratesFromTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Ditemukan dompet kulit coklat di kantin.  "}]}}]}`))
	}))
	defer server.Close()

	service := services.NewDescriptionService("test-key", server.URL)

	text := service.GenerateDescription("Dompet Hilang", "", "")
	assert.Equal(t, "Ditemukan dompet kulit coklat di kantin.", text)
}

func TestDescriptionService_SendsInlineImage(t *testing.T) {
	var captured struct {
		Contents []struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mime_type"`
					Data     string `json:"data"`
				} `json:"inline_data"`
			} `json:"parts"`
		} `json:"contents"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	service := services.NewDescriptionService("test-key", server.URL)
	service.GenerateDescription("Kunci Motor", "aGFsbG8=", "image/png")

	if assert.Len(t, captured.Contents, 1) && assert.Len(t, captured.Contents[0].Parts, 2) {
		image := captured.Contents[0].Parts[0].InlineData
		if assert.NotNil(t, image) {
			assert.Equal(t, "image/png", image.MimeType)
			assert.Equal(t, "aGFsbG8=", image.Data)
		}
		assert.Contains(t, captured.Contents[0].Parts[1].Text, "Kunci Motor")
	}
}

func TestDescriptionService_CallFailureDegradesToManualPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := services.NewDescriptionService("test-key", server.URL)

	text := service.GenerateDescription("Buku Kalkulus", "", "")
	assert.Contains(t, text, "Error generating description")
	assert.Contains(t, text, "Buku Kalkulus")
}

func TestDescriptionService_EmptyCandidatesDegradesToManualPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	service := services.NewDescriptionService("test-key", server.URL)

	text := service.GenerateDescription("Jaket Hilang", "", "")
	assert.Contains(t, text, "Error generating description")
}

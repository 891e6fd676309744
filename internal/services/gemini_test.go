package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberhall/mystery-engine/pkg/prompts"
)

func TestNewGeminiService(t *testing.T) {
	service := NewGeminiService("test-api-key", "test-model", testLogger())

	assert.Equal(t, "test-api-key", service.apiKey)
	assert.Equal(t, "test-model", service.modelName)
	assert.NotNil(t, service.httpClient)
}

func TestGeminiChatRequestStructure(t *testing.T) {
	req := GeminiChatRequest{
		SystemInstruction: &GeminiContent{
			Parts: []GeminiPart{{Text: prompts.SystemInstruction}},
		},
		Contents: []GeminiContent{
			{Role: "user", Parts: []GeminiPart{{Text: "Hello"}}},
		},
		GenerationConfig: &GeminiGenerationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	data, err := json.Marshal(req)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"system_instruction"`)
	assert.Contains(t, string(data), `"responseMimeType":"application/json"`)
	assert.Contains(t, string(data), `"role":"user"`)
}

func TestGeminiService_GenerateReply(t *testing.T) {
	var gotPath, gotKey string
	var gotReq GeminiChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"npc_reply\":\"hi\"}"}]}}]}`)
	}))
	defer server.Close()

	service := NewGeminiService("key-123", "test-model", testLogger())
	service.baseURL = server.URL

	raw, err := service.GenerateReply(context.Background(), "user prompt")

	assert.NoError(t, err)
	assert.Equal(t, `{"npc_reply":"hi"}`, raw)
	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "key-123", gotKey)
	assert.Equal(t, "user prompt", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, prompts.SystemInstruction, gotReq.SystemInstruction.Parts[0].Text)
}

func TestGeminiService_GenerateReply_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
	}))
	defer server.Close()

	service := NewGeminiService("key", "test-model", testLogger())
	service.baseURL = server.URL

	_, err := service.GenerateReply(context.Background(), "prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiService_GenerateReply_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	service := NewGeminiService("key", "test-model", testLogger())
	service.baseURL = server.URL

	_, err := service.GenerateReply(context.Background(), "prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no valid response")
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/emberhall/mystery-engine/internal/handlers"
)

func checkHealth(client *http.Client, baseURL string) (*handlers.HealthResponse, error) {
	resp, err := client.Get(baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var health handlers.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to parse health response: %w", err)
	}
	return &health, nil
}

func startSession(client *http.Client, baseURL string) (*handlers.StartResponse, error) {
	resp, err := client.Post(baseURL+"/session/start", "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp handlers.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to start session: %s", errorResp.Error)
	}

	var start handlers.StartResponse
	if err := json.Unmarshal(body, &start); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	return &start, nil
}

func sendAction(client *http.Client, baseURL, sessionID, text string) (*handlers.ActionResponse, error) {
	reqBody, err := json.Marshal(handlers.ActionRequest{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(baseURL+"/session/action", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp handlers.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("action failed: %s", errorResp.Error)
	}

	var action handlers.ActionResponse
	if err := json.Unmarshal(body, &action); err != nil {
		return nil, fmt.Errorf("failed to parse action response: %w", err)
	}
	return &action, nil
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mythosquest/scenario-engine/internal/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateRequest matches the API request structure
type GenerateRequest struct {
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed,omitempty"`
	Mission    string `json:"mission,omitempty"`
}

// GenerateResponse matches the API response structure
type GenerateResponse struct {
	Seed int64 `json:"seed"`
	*storage.Record
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func generateScenario(client *http.Client, baseURL string, difficulty string, mission string) (*GenerateResponse, error) {
	req := GenerateRequest{
		Difficulty: difficulty,
		Mission:    mission,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/scenarios",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to generate scenario: %s", errorResp.Error)
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to parse scenario response: %w", err)
	}
	return &genResp, nil
}

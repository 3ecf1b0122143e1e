package grounding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oasis-voice/oasis/internal/log"
)

const defaultMapsEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// Maps is a MapsProvider that calls the generateContent REST endpoint with
// the googleMaps tool. The SDK does not expose maps grounding yet, so the
// request and response bodies are modelled here directly.
type Maps struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	logger   log.Logger
}

// NewMaps creates a maps-grounded provider.
func NewMaps(apiKey, model string, logger log.Logger) (*Maps, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Maps{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultMapsEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}, nil
}

// mapsRequest mirrors the generateContent request body, restricted to the
// fields maps grounding needs.
type mapsRequest struct {
	Contents          []mapsContent `json:"contents"`
	SystemInstruction *mapsContent  `json:"systemInstruction,omitempty"`
	Tools             []mapsTool    `json:"tools"`
}

type mapsContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []mapsPart `json:"parts"`
}

type mapsPart struct {
	Text string `json:"text"`
}

type mapsTool struct {
	GoogleMaps mapsToolConfig `json:"googleMaps"`
}

type mapsToolConfig struct {
	EnableWidget bool `json:"enableWidget,omitempty"`
}

type mapsResponse struct {
	Candidates []struct {
		Content struct {
			Parts []mapsPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Maps struct {
					PlaceID            string            `json:"placeId"`
					Title              string            `json:"title"`
					PlaceAnswerSources []json.RawMessage `json:"placeAnswerSources"`
				} `json:"maps"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// GroundedAnswer performs one maps-grounded generateContent call.
func (m *Maps) GroundedAnswer(ctx context.Context, q MapsQuery) (*Response, error) {
	reqBody := mapsRequest{
		Contents: []mapsContent{{Role: "user", Parts: []mapsPart{{Text: q.Prompt}}}},
		Tools:    []mapsTool{{GoogleMaps: mapsToolConfig{EnableWidget: q.EnableWidget}}},
	}
	if q.SystemInstruction != "" {
		reqBody.SystemInstruction = &mapsContent{Parts: []mapsPart{{Text: q.SystemInstruction}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding maps grounding request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", m.endpoint, m.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building maps grounding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("maps grounding call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading maps grounding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("maps grounding: unexpected status %d: %s", resp.StatusCode, body)
	}

	var parsed mapsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding maps grounding response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return nil, fmt.Errorf("maps grounding: empty response")
	}

	out := &Response{}
	cand := parsed.Candidates[0]
	if len(cand.Content.Parts) > 0 {
		out.Text = cand.Content.Parts[0].Text
	}
	for _, gc := range cand.GroundingMetadata.GroundingChunks {
		if gc.Maps.PlaceID == "" {
			continue
		}
		out.Chunks = append(out.Chunks, Chunk{
			PlaceID:     gc.Maps.PlaceID,
			Title:       gc.Maps.Title,
			PlaceAnswer: len(gc.Maps.PlaceAnswerSources) > 0,
		})
	}

	m.logger.Debug("maps grounding answered",
		"prompt_len", len(q.Prompt), "chunks", len(out.Chunks))
	return out, nil
}

package grounding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oasis-voice/oasis/internal/log"
)

const defaultPlacesEndpoint = "https://places.googleapis.com/v1/places"

// maxConcurrentLookups bounds parallel place resolution per batch.
const maxConcurrentLookups = 4

// PlacesClient resolves place IDs via the Places API (New).
type PlacesClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   log.Logger
}

// NewPlacesClient creates a place resolver.
func NewPlacesClient(apiKey string, logger log.Logger) (*PlacesClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &PlacesClient{
		apiKey:   apiKey,
		endpoint: defaultPlacesEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}, nil
}

type placeResponse struct {
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

// Resolve fetches location and display name for one place ID. The
// "places/" prefix used by grounding chunks is accepted and stripped.
func (p *PlacesClient) Resolve(ctx context.Context, placeID string) (Place, error) {
	id := strings.TrimPrefix(placeID, "places/")
	if id == "" {
		return Place{}, fmt.Errorf("empty place id")
	}

	url := fmt.Sprintf("%s/%s", p.endpoint, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Place{}, fmt.Errorf("building place request: %w", err)
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("X-Goog-FieldMask", "location,displayName")

	resp, err := p.client.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("place lookup %q: %w", id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Place{}, fmt.Errorf("reading place response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("place lookup %q: unexpected status %d", id, resp.StatusCode)
	}

	var parsed placeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Place{}, fmt.Errorf("decoding place response: %w", err)
	}

	return Place{
		Lat:         parsed.Location.Latitude,
		Lng:         parsed.Location.Longitude,
		DisplayName: parsed.DisplayName.Text,
	}, nil
}

// ResolveAll resolves a batch of place IDs with all-settled semantics:
// failed lookups are logged and dropped, never aborting siblings. The
// result preserves input order, with nil entries for failures.
func ResolveAll(ctx context.Context, places Places, ids []string, logger log.Logger) []*Place {
	if logger == nil {
		logger = log.NewNop()
	}

	results := make([]*Place, len(ids))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, id := range ids {
		g.Go(func() error {
			place, err := places.Resolve(ctx, id)
			if err != nil {
				logger.Warn("place lookup failed", "place_id", id, "error", err)
				return nil // all-settled: never abort siblings
			}
			mu.Lock()
			results[i] = &place
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results
}

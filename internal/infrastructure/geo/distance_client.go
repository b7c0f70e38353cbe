package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"logiportal/internal/usecase/interfaces"
)

var ErrMissingDistanceAPIURL = errors.New("missing DISTANCE_API_URL")

const defaultDistanceCacheTTL = 6 * time.Hour

// HTTPDistanceProvider answers branch-pair road distances from the logistics
// platform's routing API, with a cache in front of it.
//
// In mock mode (DISTANCE_API_MOCK) distances are derived deterministically
// from the branch pair, so quotes stay stable across runs without the API.

type HTTPDistanceProvider struct {
	baseURL  string
	http     *http.Client
	cache    DistanceCache
	cacheTTL time.Duration
	mockMode bool
}

var _ interfaces.IDistanceProvider = (*HTTPDistanceProvider)(nil)

func NewHTTPDistanceProvider(baseURL string, cache DistanceCache) (*HTTPDistanceProvider, error) {
	if cache == nil {
		cache = NoopDistanceCache{}
	}

	if isDistanceMockEnabled() {
		log.Printf("[distance][client] mock mode enabled")
		return &HTTPDistanceProvider{cache: cache, cacheTTL: defaultDistanceCacheTTL, mockMode: true}, nil
	}

	if baseURL == "" {
		log.Printf("[distance][client] missing DISTANCE_API_URL")
		return nil, ErrMissingDistanceAPIURL
	}

	return &HTTPDistanceProvider{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		cache:    cache,
		cacheTTL: defaultDistanceCacheTTL,
	}, nil
}

type distanceResponse struct {
	DistanceKM float64 `json:"distance_km"`
}

func (p *HTTPDistanceProvider) DistanceBetweenBranches(ctx context.Context, originBranchID, destinationBranchID string) (float64, error) {
	key := distanceCacheKey(originBranchID, destinationBranchID)

	if km, ok, err := p.cache.Get(ctx, key); err != nil {
		log.Printf("[distance][cache] get failed key=%s err=%v", key, err)
	} else if ok {
		return km, nil
	}

	km, err := p.fetch(ctx, originBranchID, destinationBranchID)
	if err != nil {
		return 0, err
	}

	if err := p.cache.Set(ctx, key, km, p.cacheTTL); err != nil {
		log.Printf("[distance][cache] set failed key=%s err=%v", key, err)
	}
	return km, nil
}

func (p *HTTPDistanceProvider) fetch(ctx context.Context, originBranchID, destinationBranchID string) (float64, error) {
	if p.mockMode {
		return mockDistanceKM(originBranchID, destinationBranchID), nil
	}

	q := url.Values{}
	q.Set("origin", originBranchID)
	q.Set("destination", destinationBranchID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/distances?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		log.Printf("[distance][client] request failed origin=%s destination=%s err=%v", originBranchID, destinationBranchID, err)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance api returned status %d", resp.StatusCode)
	}

	var body distanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.DistanceKM < 0 {
		return 0, fmt.Errorf("distance api returned negative distance %f", body.DistanceKM)
	}
	return body.DistanceKM, nil
}

func distanceCacheKey(originBranchID, destinationBranchID string) string {
	return "distance:" + originBranchID + ":" + destinationBranchID
}

// mockDistanceKM spreads branch pairs over 5..500 km.
func mockDistanceKM(originBranchID, destinationBranchID string) float64 {
	if originBranchID == destinationBranchID {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(originBranchID + "|" + destinationBranchID))
	return float64(5 + h.Sum32()%496)
}

func isDistanceMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("DISTANCE_API_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

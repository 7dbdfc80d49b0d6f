package location

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// HTTPVerifier calls the location-verification service over plain JSON.
// One POST per quote; retries belong to this collaborator's operator, not to
// the pricing engine.
type HTTPVerifier struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.ILocationVerifier = (*HTTPVerifier)(nil)

func NewHTTPVerifier(baseURL string, timeout time.Duration) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	PlaceID string   `json:"place_id,omitempty"`
}

type verifyResponse struct {
	Resolved              bool     `json:"resolved"`
	Lat                   float64  `json:"lat"`
	Lng                   float64  `json:"lng"`
	OneWayDurationSeconds int      `json:"one_way_duration_seconds"`
	Confidence            *float64 `json:"confidence,omitempty"`
	Risk                  *struct {
		HighAccessRisk       bool    `json:"high_access_risk"`
		WeatherVulnerability float64 `json:"weather_vulnerability"`
	} `json:"risk,omitempty"`
}

func (v *HTTPVerifier) Verify(ctx context.Context, ref entities.LocationReference) (entities.VerifiedLocation, error) {
	body, err := json.Marshal(verifyRequest{
		Address: ref.Address,
		Lat:     ref.Lat,
		Lng:     ref.Lng,
		PlaceID: ref.PlaceID,
	})
	if err != nil {
		return entities.VerifiedLocation{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/verify", bytes.NewReader(body))
	if err != nil {
		return entities.VerifiedLocation{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		log.Printf("[location][verifier] request failed err=%v", err)
		return entities.VerifiedLocation{}, fmt.Errorf("%w: %v", interfaces.ErrLocationUnresolved, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity:
		return entities.VerifiedLocation{}, interfaces.ErrLocationUnresolved
	default:
		log.Printf("[location][verifier] unexpected status=%d", resp.StatusCode)
		return entities.VerifiedLocation{}, fmt.Errorf("%w: verifier returned status %d", interfaces.ErrLocationUnresolved, resp.StatusCode)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entities.VerifiedLocation{}, fmt.Errorf("%w: malformed verifier response", interfaces.ErrLocationUnresolved)
	}
	if !out.Resolved {
		return entities.VerifiedLocation{}, interfaces.ErrLocationUnresolved
	}

	loc := entities.VerifiedLocation{
		Lat:                   out.Lat,
		Lng:                   out.Lng,
		OneWayDurationSeconds: out.OneWayDurationSeconds,
	}
	if out.Confidence != nil {
		loc.Confidence = *out.Confidence
	}
	if out.Risk != nil {
		loc.Risk = &entities.RiskProfile{
			HighAccessRisk:       out.Risk.HighAccessRisk,
			WeatherVulnerability: out.Risk.WeatherVulnerability,
		}
	}
	return loc, nil
}

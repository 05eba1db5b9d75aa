package routeai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/route"
	"logix/internal/pkg/errs"
)

// Client is the HTTP client for the external route optimization service.
// It speaks the service's JSON protocol and maps responses back onto the
// caller's stops. A response that drops or duplicates a stop is an error:
// the caller decides whether to fall back, the client never papers over
// an incomplete sequence.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Client instance.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}, nil
}

type geoPointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type stopDTO struct {
	OrderID     string      `json:"order_id"`
	Address     string      `json:"address"`
	Location    geoPointDTO `json:"location"`
	WindowStart *time.Time  `json:"window_start,omitempty"`
	WindowEnd   *time.Time  `json:"window_end,omitempty"`
	Industry    string      `json:"industry,omitempty"`
	Priority    string      `json:"priority,omitempty"`
	Expedited   bool        `json:"expedited"`
	Manual      bool        `json:"manual"`
}

type optimizeRequestDTO struct {
	Origin      geoPointDTO `json:"origin"`
	Stops       []stopDTO   `json:"stops"`
	VehicleType string      `json:"vehicle_type,omitempty"`
	MaxLoad     int         `json:"max_load"`
	DepartAt    *time.Time  `json:"depart_at,omitempty"`
}

type optimizeResponseDTO struct {
	Sequence             []string `json:"sequence"`
	TotalDistanceKm      float64  `json:"total_distance_km"`
	TotalDurationSeconds int64    `json:"total_duration_seconds"`
}

type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("route optimization service returned %d: %s", e.Code, e.Body)
}

// Optimize submits the request and maps the returned sequence back onto the
// request's stops.
func (c *Client) Optimize(ctx context.Context, req route.Request) (route.Result, error) {
	body, err := json.Marshal(toRequestDTO(req))
	if err != nil {
		return route.Result{}, fmt.Errorf("marshal optimize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/routes/optimize", bytes.NewReader(body))
	if err != nil {
		return route.Result{}, fmt.Errorf("create optimize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return route.Result{}, fmt.Errorf("call route optimization service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return route.Result{}, &statusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var dto optimizeResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return route.Result{}, fmt.Errorf("decode optimize response: %w", err)
	}

	return toResult(req, dto)
}

func toRequestDTO(req route.Request) optimizeRequestDTO {
	dto := optimizeRequestDTO{
		Origin:  geoPointDTO{Lat: req.Origin.Lat(), Lon: req.Origin.Lon()},
		Stops:   make([]stopDTO, 0, len(req.Stops)),
		MaxLoad: req.MaxLoad,
	}
	// An unset vehicle type is omitted rather than sent as "unknown".
	if req.VehicleType.Validate() == nil {
		dto.VehicleType = req.VehicleType.String()
	}
	if !req.DepartAt.IsZero() {
		departAt := req.DepartAt
		dto.DepartAt = &departAt
	}

	for _, s := range req.Stops {
		stop := stopDTO{
			OrderID:   s.OrderID.String(),
			Address:   s.Address,
			Location:  geoPointDTO{Lat: s.Location.Lat(), Lon: s.Location.Lon()},
			Expedited: s.RequiresExpeditedHandling,
			Manual:    s.RequiresManualHandling,
		}
		if s.Industry.Validate() == nil {
			stop.Industry = s.Industry.String()
		}
		if s.Priority.Validate() == nil {
			stop.Priority = s.Priority.String()
		}
		if s.HasWindow() {
			start, end := s.Window.Start(), s.Window.End()
			stop.WindowStart = &start
			stop.WindowEnd = &end
		}
		dto.Stops = append(dto.Stops, stop)
	}

	return dto
}

// toResult reorders the request's stops per the returned sequence. Every stop
// must appear exactly once, otherwise the response is rejected.
func toResult(req route.Request, dto optimizeResponseDTO) (route.Result, error) {
	if len(dto.Sequence) != len(req.Stops) {
		return route.Result{}, fmt.Errorf("optimize response has %d stops, want %d",
			len(dto.Sequence), len(req.Stops))
	}

	byID := make(map[kernel.UUID]route.Stop, len(req.Stops))
	for _, s := range req.Stops {
		byID[s.OrderID] = s
	}

	stops := make([]route.Stop, 0, len(dto.Sequence))
	for _, raw := range dto.Sequence {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return route.Result{}, fmt.Errorf("optimize response order id %q: %w", raw, err)
		}

		stop, ok := byID[id]
		if !ok {
			return route.Result{}, fmt.Errorf("optimize response references unknown or repeated order %s", raw)
		}
		delete(byID, id)

		stops = append(stops, stop)
	}

	return route.Result{
		Stops:           stops,
		TotalDistanceKm: dto.TotalDistanceKm,
		TotalDuration:   time.Duration(dto.TotalDurationSeconds) * time.Second,
		Optimized:       true,
	}, nil
}

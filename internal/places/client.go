package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://maps.googleapis.com"

	// Autocomplete bias: central Bengaluru with a 90km radius.
	biasLocation = "12.9716,77.5946"
	biasRadius   = "90000"
)

// Config carries everything the client needs. The API key is validated at
// construction so a misconfigured deployment fails at startup instead of
// emitting empty-credential requests.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client wraps the Google Maps web services used by the app: place
// autocomplete, place details and the distance matrix.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("places: missing API key")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{apiKey: cfg.APIKey, baseURL: baseURL, http: httpClient}, nil
}

type autocompleteResponse struct {
	Status      string       `json:"status"`
	Predictions []Prediction `json:"predictions"`
}

// Autocomplete returns place predictions for a free-text query.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]Prediction, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("location", biasLocation)
	params.Set("radius", biasRadius)
	params.Set("types", "geocode")
	params.Set("key", c.apiKey)

	var decoded autocompleteResponse
	if err := c.getJSON(ctx, "/maps/api/place/autocomplete/json", params, &decoded); err != nil {
		return nil, err
	}
	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places: autocomplete status %s", decoded.Status)
	}
	return decoded.Predictions, nil
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name     string `json:"name"`
		Geometry struct {
			Location *LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// PlaceDetails resolves a place id to its name and coordinate.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (Place, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "geometry/location,name")
	params.Set("key", c.apiKey)

	var decoded detailsResponse
	if err := c.getJSON(ctx, "/maps/api/place/details/json", params, &decoded); err != nil {
		return Place{}, err
	}
	if decoded.Status != "OK" || decoded.Result.Geometry.Location == nil {
		return Place{}, fmt.Errorf("places: details status %s", decoded.Status)
	}
	return Place{Name: decoded.Result.Name, Location: decoded.Result.Geometry.Location}, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration *struct {
				Value int64 `json:"value"`
			} `json:"duration"`
			Distance *struct {
				Value int64 `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// DistanceMatrix batches all origins against a single destination in one
// driving-mode request. The returned Matrix always has one row per origin, in
// origin order. An origin the provider could not route gets nil duration and
// distance; only a failure of the whole request is an error. No retries.
func (c *Client) DistanceMatrix(ctx context.Context, origins []LatLng, destination LatLng) (Matrix, error) {
	if len(origins) == 0 {
		return Matrix{}, errors.New("places: at least one origin required")
	}

	originParts := make([]string, len(origins))
	for i, o := range origins {
		originParts[i] = formatLatLng(o)
	}

	params := url.Values{}
	params.Set("origins", strings.Join(originParts, "|"))
	params.Set("destinations", formatLatLng(destination))
	params.Set("mode", "driving")
	params.Set("key", c.apiKey)

	var decoded matrixResponse
	if err := c.getJSON(ctx, "/maps/api/distancematrix/json", params, &decoded); err != nil {
		return Matrix{}, err
	}
	if decoded.Status != "OK" {
		return Matrix{}, fmt.Errorf("places: distance matrix status %s", decoded.Status)
	}

	matrix := Matrix{Rows: make([]RouteEstimate, len(origins))}
	for i := range origins {
		if i >= len(decoded.Rows) || len(decoded.Rows[i].Elements) == 0 {
			continue
		}
		el := decoded.Rows[i].Elements[0]
		if el.Status != "OK" {
			continue
		}
		if el.Duration != nil {
			v := el.Duration.Value
			matrix.Rows[i].DurationSec = &v
		}
		if el.Distance != nil {
			v := el.Distance.Value
			matrix.Rows[i].DistanceM = &v
		}
	}
	return matrix, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places: upstream returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func formatLatLng(p LatLng) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

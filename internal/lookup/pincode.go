package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tms/internal/domain"
	"tms/internal/port"
)

type postOffice struct {
	Name     string `json:"Name"`
	District string `json:"District"`
	State    string `json:"State"`
	Country  string `json:"Country"`
}

type pincodeResponse struct {
	Message    string       `json:"Message"`
	Status     string       `json:"Status"`
	PostOffice []postOffice `json:"PostOffice"`
}

// PincodeClient resolves PIN codes through the India Post pincode API.
type PincodeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPincodeClient creates a client for baseURL (for example
// https://api.postalpincode.in). Callers bound each call with ctx.
func NewPincodeClient(baseURL string, timeout time.Duration) *PincodeClient {
	return &PincodeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *PincodeClient) LookupPincode(ctx context.Context, pincode string) (*domain.PincodeDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/pincode/"+pincode, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating pincode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: pincode API returned %d", domain.ErrLookupUnavailable, resp.StatusCode)
	}

	// The API answers with a one-element array.
	var body []pincodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding pincode response: %v", domain.ErrLookupUnavailable, err)
	}
	if len(body) == 0 || !strings.EqualFold(body[0].Status, "Success") || len(body[0].PostOffice) == 0 {
		return nil, domain.ErrNotFound
	}

	first := body[0].PostOffice[0]
	details := &domain.PincodeDetails{
		Pincode:  pincode,
		District: first.District,
		State:    first.State,
		Country:  first.Country,
	}
	for _, po := range body[0].PostOffice {
		details.PostOffices = append(details.PostOffices, po.Name)
	}
	return details, nil
}

var _ port.PincodeLookup = (*PincodeClient)(nil)

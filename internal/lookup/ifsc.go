package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tms/internal/domain"
	"tms/internal/port"
)

type ifscResponse struct {
	IFSC     string `json:"IFSC"`
	Bank     string `json:"BANK"`
	Branch   string `json:"BRANCH"`
	Address  string `json:"ADDRESS"`
	City     string `json:"CITY"`
	District string `json:"DISTRICT"`
	State    string `json:"STATE"`
	MICR     string `json:"MICR"`
}

// IFSCClient resolves IFSC codes through the Razorpay IFSC API.
type IFSCClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIFSCClient creates a client for baseURL (for example https://ifsc.razorpay.com).
func NewIFSCClient(baseURL string, timeout time.Duration) *IFSCClient {
	return &IFSCClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *IFSCClient) LookupIFSC(ctx context.Context, ifsc string) (*domain.BankBranch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(ifsc), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating IFSC request: %w", err)
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
		return nil, fmt.Errorf("%w: IFSC API returned %d", domain.ErrLookupUnavailable, resp.StatusCode)
	}

	var body ifscResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding IFSC response: %v", domain.ErrLookupUnavailable, err)
	}

	return &domain.BankBranch{
		IFSC:     body.IFSC,
		Bank:     body.Bank,
		Branch:   body.Branch,
		Address:  body.Address,
		City:     body.City,
		District: body.District,
		State:    body.State,
		MICR:     body.MICR,
	}, nil
}

var _ port.IFSCLookup = (*IFSCClient)(nil)

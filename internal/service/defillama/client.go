package defillama

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	drepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/config"
	xhttp "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/http"
)

// Client implements a TVLProvider backed by the DeFiLlama API.
type Client struct {
	http    *xhttp.Client
	baseURL string
}

func New(cfg *config.Config) *Client {
	return &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(cfg.DeFiLlama.Timeout)),
		baseURL: strings.TrimRight(cfg.DeFiLlama.BaseURL, "/"),
	}
}

// TVL fetches total value locked for a protocol in USD. Protocols DeFiLlama
// does not track yield (0, nil); absence of TVL data is an expected state,
// not a failure.
func (c *Client) TVL(ctx context.Context, protocol string) (float64, error) {
	slug := ProtocolSlug(protocol)
	if slug == "" {
		return 0, nil
	}

	// The endpoint responds with a bare number, not a JSON object.
	var raw []byte
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/api/tvl/%s", c.baseURL, slug),
	}, &raw)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return 0, nil
		}
		return 0, fmt.Errorf("defillama tvl %s: %w", slug, err)
	}

	tvl, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return 0, nil
	}
	return tvl, nil
}

var _ drepo.TVLProvider = (*Client)(nil)

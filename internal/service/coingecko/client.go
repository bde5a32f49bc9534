package coingecko

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	drepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/config"
	xhttp "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/http"
)

// ErrAssetNotFound is returned when CoinGecko does not know the asset id.
var ErrAssetNotFound = errors.New("asset not found")

// Client implements a MarketDataProvider backed by the CoinGecko REST API.
type Client struct {
	http    *xhttp.Client
	baseURL string
	apiKey  string
}

func New(cfg *config.Config) *Client {
	return &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(cfg.CoinGecko.Timeout)),
		baseURL: strings.TrimRight(cfg.CoinGecko.BaseURL, "/"),
		apiKey:  cfg.CoinGecko.APIKey,
	}
}

type coinResponse struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	MarketData struct {
		CurrentPrice      map[string]float64 `json:"current_price"`
		MarketCap         map[string]float64 `json:"market_cap"`
		CirculatingSupply float64            `json:"circulating_supply"`
		MaxSupply         *float64           `json:"max_supply"`
		TotalSupply       *float64           `json:"total_supply"`
	} `json:"market_data"`
}

// Quote fetches price and supply data for one asset. The returned quote
// carries no locked-value figure; the caller merges TVL separately.
func (c *Client) Quote(ctx context.Context, assetID string) (*models.AssetQuote, error) {
	headers := map[string]string{}
	if c.apiKey != "" {
		// Free-tier header; pro keys use x-cg-pro-api-key.
		headers["x-cg-demo-api-key"] = c.apiKey
	}

	var resp coinResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     fmt.Sprintf("%s/coins/%s", c.baseURL, assetID),
		Headers: headers,
	}, &resp)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) && se.StatusCode == 404 {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, assetID)
		}
		return nil, fmt.Errorf("coingecko quote %s: %w", assetID, err)
	}

	return &models.AssetQuote{
		Name:             resp.Name,
		Symbol:           strings.ToUpper(resp.Symbol),
		UnitPrice:        resp.MarketData.CurrentPrice["usd"],
		CirculatingUnits: resp.MarketData.CirculatingSupply,
		MaxUnits:         resp.MarketData.MaxSupply,
		TotalUnits:       resp.MarketData.TotalSupply,
		MarketCap:        resp.MarketData.MarketCap["usd"],
	}, nil
}

var _ drepo.MarketDataProvider = (*Client)(nil)

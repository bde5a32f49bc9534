package bayut

import "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"

// demoProperties is a small sample modeled on real Dubai market listings.
// Enough 2BR marina entries exist to clear the minimum comparable count.
var demoProperties = []models.PropertyRecord{
	{Area: "dubai-marina", PropertyType: "apartment", Bedrooms: 2, Bathrooms: 2, SizeSqft: 1150, PriceAED: 1_650_000},
	{Area: "dubai-marina", PropertyType: "apartment", Bedrooms: 2, Bathrooms: 2, SizeSqft: 1250, PriceAED: 1_820_000},
	{Area: "dubai-marina", PropertyType: "apartment", Bedrooms: 2, Bathrooms: 2, SizeSqft: 1200, PriceAED: 1_740_000},
	{Area: "dubai-marina", PropertyType: "apartment", Bedrooms: 2, Bathrooms: 3, SizeSqft: 1310, PriceAED: 1_920_000},
	{Area: "dubai-marina", PropertyType: "apartment", Bedrooms: 1, Bathrooms: 1, SizeSqft: 780, PriceAED: 1_150_000},
	{Area: "downtown-dubai", PropertyType: "studio", Bedrooms: 0, Bathrooms: 1, SizeSqft: 480, PriceAED: 850_000},
	{Area: "downtown-dubai", PropertyType: "apartment", Bedrooms: 1, Bathrooms: 1, SizeSqft: 820, PriceAED: 1_400_000},
	{Area: "jvc", PropertyType: "apartment", Bedrooms: 1, Bathrooms: 1, SizeSqft: 750, PriceAED: 700_000},
}

const demoMaxResults = 5

// demoListings filters the sample data the way the live search would:
// matching unit type and bedroom count, capped at a few results.
func demoListings(q models.ListingQuery) []models.PropertyRecord {
	matched := make([]models.PropertyRecord, 0, demoMaxResults)
	for _, p := range demoProperties {
		if p.PropertyType != q.PropertyType || p.Bedrooms != q.Bedrooms {
			continue
		}
		matched = append(matched, p)
		if len(matched) == demoMaxResults {
			break
		}
	}
	return matched
}

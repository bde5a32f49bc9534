package repository

import "strings"

// Area identifies a Dubai district with distinct pricing dynamics.
type Area string

const (
	AreaDubaiMarina      Area = "dubai-marina"
	AreaDowntown         Area = "downtown-dubai"
	AreaJBR              Area = "jbr"
	AreaPalmJumeirah     Area = "palm-jumeirah"
	AreaBusinessBay      Area = "business-bay"
	AreaDIFC             Area = "difc"
	AreaJVC              Area = "jvc"
	AreaSportsCity       Area = "sports-city"
	AreaDiscoveryGardens Area = "discovery-gardens"
)

// PropertyType identifies a residential unit category.
type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeVilla     PropertyType = "villa"
	TypeTownhouse PropertyType = "townhouse"
	TypePenthouse PropertyType = "penthouse"
	TypeStudio    PropertyType = "studio"
)

var areaAliases = map[string]Area{
	"dubai marina":      AreaDubaiMarina,
	"downtown dubai":    AreaDowntown,
	"downtown":          AreaDowntown,
	"jbr":               AreaJBR,
	"palm jumeirah":     AreaPalmJumeirah,
	"business bay":      AreaBusinessBay,
	"difc":              AreaDIFC,
	"jvc":               AreaJVC,
	"sports city":       AreaSportsCity,
	"discovery gardens": AreaDiscoveryGardens,
}

// IsValidArea returns true for the supported Dubai areas.
func IsValidArea(a Area) bool {
	switch a {
	case AreaDubaiMarina, AreaDowntown, AreaJBR, AreaPalmJumeirah,
		AreaBusinessBay, AreaDIFC, AreaJVC, AreaSportsCity, AreaDiscoveryGardens:
		return true
	default:
		return false
	}
}

// NormalizeArea converts a user-supplied area name ("Dubai Marina") to the
// slug form providers expect. Unknown names are slugged best-effort so the
// listings provider can still attempt a search.
func NormalizeArea(s string) Area {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if a, ok := areaAliases[normalized]; ok {
		return a
	}
	return Area(strings.ReplaceAll(normalized, " ", "-"))
}

// IsValidPropertyType returns true for supported unit categories.
func IsValidPropertyType(t PropertyType) bool {
	switch t {
	case TypeApartment, TypeVilla, TypeTownhouse, TypePenthouse, TypeStudio:
		return true
	default:
		return false
	}
}

// NormalizePropertyType lowercases and trims a user-supplied type.
func NormalizePropertyType(s string) PropertyType {
	return PropertyType(strings.ToLower(strings.TrimSpace(s)))
}

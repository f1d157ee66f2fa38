package geo

// Location is a lat/lon pair for a known consignee delivery point.
type Location struct {
	Lat float64
	Lon float64
}

// DefaultPIN is assumed when a consignee address carries no recognizable
// PIN code.
const DefaultPIN = "770076"

// consigneeLocations maps 6-digit PIN codes to delivery coordinates.
// An unknown PIN is not an error; it just contributes zero transport
// cost for the run.
var consigneeLocations = map[string]Location{
	"770076": {Lat: 22.1160, Lon: 84.0170}, // Sundargarh, Odisha
	"754210": {Lat: 20.4625, Lon: 86.4170}, // Kendrapara, Odisha
	"110001": {Lat: 28.6328, Lon: 77.2197}, // New Delhi
	"400001": {Lat: 18.9388, Lon: 72.8354}, // Mumbai Fort
	"560001": {Lat: 12.9762, Lon: 77.6033}, // Bengaluru
	"700001": {Lat: 22.5726, Lon: 88.3639}, // Kolkata
	"380001": {Lat: 23.0258, Lon: 72.5873}, // Ahmedabad
	"495677": {Lat: 21.9806, Lon: 82.4893}, // Korba, Chhattisgarh
}

// LookupPIN resolves a PIN code to its delivery coordinates.
func LookupPIN(pin string) (Location, bool) {
	loc, ok := consigneeLocations[pin]
	return loc, ok
}

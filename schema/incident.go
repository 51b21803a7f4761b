package schema

const (
	IncidentCollection = "incidents"
)

// GeoJSON is a mongodb geosphere-indexable location. Coordinates are
// in [longitude, latitude] order.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoJSONPoint builds a Point from a latitude/longitude pair.
func NewGeoJSONPoint(lat, lng float64) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
	}
}

// Lat returns the latitude of a Point, 0 if malformed.
func (g GeoJSON) Lat() float64 {
	if len(g.Coordinates) != 2 {
		return 0
	}
	return g.Coordinates[1]
}

// Lng returns the longitude of a Point, 0 if malformed.
func (g GeoJSON) Lng() float64 {
	if len(g.Coordinates) != 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Severity is the AI-assigned urgency of an incident, from 0 (noise)
// to 10 (critical emergency).
type Severity struct {
	Score       float64 `json:"score" bson:"score"`
	Description string  `json:"description" bson:"description"`
}

// Authenticity is the AI verdict on whether an incident's media
// attachment is consistent with its description.
type Authenticity struct {
	IsAuthentic     bool    `json:"is_authentic" bson:"is_authentic"`
	ConfidenceScore float64 `json:"confidence_score" bson:"confidence_score"`
	Explanation     string  `json:"explanation" bson:"explanation"`
}

// Incident is a persisted emergency report. Records are immutable once
// created: id and timestamp are assigned by the store and there is no
// update path.
type Incident struct {
	ID           string        `json:"id" bson:"id"`
	Description  string        `json:"description" bson:"description"`
	Location     GeoJSON       `json:"location" bson:"location"`
	PlaceName    string        `json:"place_name,omitempty" bson:"place_name,omitempty"`
	MediaURL     string        `json:"media_url,omitempty" bson:"media_url,omitempty"`
	MediaType    string        `json:"media_type,omitempty" bson:"media_type,omitempty"`
	Timestamp    int64         `json:"ts" bson:"ts"`
	IsAnonymous  bool          `json:"is_anonymous" bson:"is_anonymous"`
	Severity     *Severity     `json:"severity,omitempty" bson:"severity,omitempty"`
	Authenticity *Authenticity `json:"authenticity,omitempty" bson:"authenticity,omitempty"`
}

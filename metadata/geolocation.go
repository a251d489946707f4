package metadata

import (
	"encoding/json"
)

// GeoLocation is a spatial region or named place where data was gathered or
// about which the resource is focused
type GeoLocation struct {
	GeoLocationPlace   string               `json:"geoLocationPlace,omitempty"`
	GeoLocationPoint   *GeoLocationPoint    `json:"geoLocationPoint,omitempty"`
	GeoLocationBox     *GeoLocationBox      `json:"geoLocationBox,omitempty"`
	GeoLocationPolygon []GeoLocationPolygon `json:"geoLocationPolygon,omitempty"`
}

// PolygonPoints returns the polygon vertices in order
func (g GeoLocation) PolygonPoints() []GeoLocationPoint {
	var points []GeoLocationPoint
	for _, entry := range g.GeoLocationPolygon {
		if entry.PolygonPoint != nil {
			points = append(points, *entry.PolygonPoint)
		}
	}
	return points
}

// InPolygonPoint returns the point inside the polygon, if one is given
func (g GeoLocation) InPolygonPoint() *GeoLocationPoint {
	for _, entry := range g.GeoLocationPolygon {
		if entry.InPolygonPoint != nil {
			return entry.InPolygonPoint
		}
	}
	return nil
}

// Validate checks the polygon entries. A polygon needs a closed ring of at
// least four vertices.
func (g GeoLocation) Validate() error {
	if len(g.GeoLocationPolygon) == 0 {
		return nil
	}
	if err := validateEach(g.GeoLocationPolygon); err != nil {
		return err
	}
	points := g.PolygonPoints()
	if len(points) < 4 {
		return &ValidationError{Type: "GeoLocation", Field: "geoLocationPolygon", Reason: "needs at least four points"}
	}
	if points[0] != points[len(points)-1] {
		return &ValidationError{Type: "GeoLocation", Field: "geoLocationPolygon", Reason: "must end with its first point"}
	}
	return nil
}

// MarshalJSON validates before encoding
func (g GeoLocation) MarshalJSON() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	type alias GeoLocation
	return json.Marshal(alias(g))
}

// UnmarshalJSON decodes a geolocation; every member is optional
func (g *GeoLocation) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias GeoLocation
	var v alias
	if err := decodeObject(data, "GeoLocation", &v); err != nil {
		return err
	}
	*g = GeoLocation(v)
	return nil
}

// GeoLocationPoint is a point location in space
type GeoLocationPoint struct {
	PointLatitude  Coordinate `json:"pointLatitude"`
	PointLongitude Coordinate `json:"pointLongitude"`
}

// UnmarshalJSON requires both coordinates
func (p *GeoLocationPoint) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias GeoLocationPoint
	var v alias
	if err := decodeObject(data, "GeoLocationPoint", &v, "pointLatitude", "pointLongitude"); err != nil {
		return err
	}
	*p = GeoLocationPoint(v)
	return nil
}

// GeoLocationBox is a rectangle given by its bounding coordinates
type GeoLocationBox struct {
	WestBoundLongitude Coordinate `json:"westBoundLongitude"`
	EastBoundLongitude Coordinate `json:"eastBoundLongitude"`
	SouthBoundLatitude Coordinate `json:"southBoundLatitude"`
	NorthBoundLatitude Coordinate `json:"northBoundLatitude"`
}

// UnmarshalJSON requires all four bounds
func (b *GeoLocationBox) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias GeoLocationBox
	var v alias
	if err := decodeObject(data, "GeoLocationBox", &v,
		"westBoundLongitude", "eastBoundLongitude", "southBoundLatitude", "northBoundLatitude"); err != nil {
		return err
	}
	*b = GeoLocationBox(v)
	return nil
}

// GeoLocationPolygon is one entry of a geoLocationPolygon list: a single
// vertex or the point marking the inside of the polygon
type GeoLocationPolygon struct {
	PolygonPoint   *GeoLocationPoint `json:"polygonPoint,omitempty"`
	InPolygonPoint *GeoLocationPoint `json:"inPolygonPoint,omitempty"`
}

// Validate requires one of the two points
func (p GeoLocationPolygon) Validate() error {
	if p.PolygonPoint == nil && p.InPolygonPoint == nil {
		return &ValidationError{Type: "GeoLocationPolygon", Field: "polygonPoint", Reason: "or inPolygonPoint is required"}
	}
	return nil
}

// MarshalJSON validates before encoding
func (p GeoLocationPolygon) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	type alias GeoLocationPolygon
	return json.Marshal(alias(p))
}

// UnmarshalJSON requires polygonPoint or inPolygonPoint
func (p *GeoLocationPolygon) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	type alias GeoLocationPolygon
	var v alias
	if err := decodeObject(data, "GeoLocationPolygon", &v); err != nil {
		return err
	}
	if v.PolygonPoint == nil && v.InPolygonPoint == nil {
		return &DecodeError{Type: "GeoLocationPolygon", Field: "polygonPoint", Reason: "missing required field"}
	}
	*p = GeoLocationPolygon(v)
	return nil
}

// Package quake holds the earthquake events shown as markers on the globe.
package quake

// markerRadiusDivisor turns a magnitude into a marker radius in globe units.
const markerRadiusDivisor = 20.0

// Event is a single earthquake. Depth is kept with the event but nothing draws it.
type Event struct {
	latitude  float64
	longitude float64
	depth     float64
	magnitude float64
}

// NewEvent creates an event from degrees, kilometres and magnitude.
func NewEvent(latitude, longitude, depthKm, magnitude float64) Event {
	return Event{
		latitude:  latitude,
		longitude: longitude,
		depth:     depthKm,
		magnitude: magnitude,
	}
}

func (e Event) Latitude() float64  { return e.latitude }
func (e Event) Longitude() float64 { return e.longitude }
func (e Event) Depth() float64     { return e.depth }
func (e Event) Magnitude() float64 { return e.magnitude }

// MarkerRadius is the radius of the marker sphere drawn for the event.
func (e Event) MarkerRadius() float64 {
	return MarkerRadius(e.magnitude)
}

// MarkerRadius scales linearly with magnitude.
func MarkerRadius(magnitude float64) float64 {
	return magnitude / markerRadiusDivisor
}

// FilterMinMagnitude returns the events with a magnitude of at least minMagnitude,
// keeping their order.
func FilterMinMagnitude(events []Event, minMagnitude float64) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.magnitude >= minMagnitude {
			out = append(out, e)
		}
	}
	return out
}

package quake

// DefaultCatalog is the built-in set of notable earthquakes drawn by the marker scenes.
func DefaultCatalog() []Event {
	return []Event{
		NewEvent(-38.143, -73.407, 25, 9.5),   // Valdivia, 1960
		NewEvent(60.908, -147.339, 25, 9.2),   // Prince William Sound, 1964
		NewEvent(3.295, 95.982, 30, 9.1),      // Sumatra-Andaman, 2004
		NewEvent(38.297, 142.373, 29, 9.1),    // Tohoku, 2011
		NewEvent(-36.122, -72.898, 22.9, 8.8), // Maule, 2010
		NewEvent(37.75, -122.55, 8, 7.9),      // San Francisco, 1906
		NewEvent(28.231, 84.731, 8.2, 7.8),    // Gorkha, 2015
		NewEvent(37.226, 37.014, 10, 7.8),     // Kahramanmaras, 2023
		NewEvent(-42.737, 173.054, 15.1, 7.8), // Kaikoura, 2016
		NewEvent(18.443, -72.571, 13, 7.0),    // Haiti, 2010
	}
}

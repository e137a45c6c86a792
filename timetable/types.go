package timetable

// LegCount is fixed: the route is a three-leg chain.
const LegCount = 3

// Record is one raw timetable row as ingested, clock text exactly as written
// in the source file.
type Record struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

// Train is a single scheduled run on one leg, in minutes since midnight.
// Arrival is expected to follow Departure within the same service day; no
// cross-midnight wraparound is modeled and the values are not validated.
type Train struct {
	Departure int
	Arrival   int
}

// Leg is the timetable for one fixed segment of the route plus its static
// metadata.
type Leg struct {
	Key    string
	From   string
	To     string
	Line   string
	Trains []Train
}

package ride

import "coasterpaint/internal/paint"

// Station is one boarding platform of a ride: Length tiles starting at
// Start and running in Direction. Entrance and Exit are the tiles of its
// entrance and exit buildings, nil while none is placed.
type Station struct {
	Start     paint.CoordsXY
	Direction paint.Direction
	Height    int32
	Length    int
	Entrance  *paint.CoordsXY
	Exit      *paint.CoordsXY
}

// directionDelta is the step to the neighbouring tile in each direction.
var directionDelta = [paint.NumOrthogonalDirections]paint.CoordsXY{
	{X: -32, Y: 0},
	{X: 0, Y: 32},
	{X: 32, Y: 0},
	{X: 0, Y: -32},
}

// Contains reports whether pos is one of the station's platform tiles.
func (st Station) Contains(pos paint.CoordsXY) bool {
	d := directionDelta[st.Direction&3]
	for i := int32(0); i < int32(st.Length); i++ {
		if pos.X == st.Start.X+i*d.X && pos.Y == st.Start.Y+i*d.Y {
			return true
		}
	}
	return false
}

// IsAccess reports whether pos holds the station's entrance or exit.
func (st Station) IsAccess(pos paint.CoordsXY) bool {
	return (st.Entrance != nil && *st.Entrance == pos) || (st.Exit != nil && *st.Exit == pos)
}

// TrackColour is one of a ride's colour schemes.
type TrackColour struct {
	Main       paint.Colour
	Additional paint.Colour
	Supports   paint.Colour
}

// Ride is the ride a piece of track belongs to, as the track painter needs
// it: colours and station layout.
type Ride struct {
	ID       uint16
	Name     string
	Colours  TrackColour
	Stations []Station
}

// New returns a ride with one colour scheme and no stations.
func New(id uint16, name string, colours TrackColour) *Ride {
	return &Ride{ID: id, Name: name, Colours: colours}
}

// AddStation appends a station and returns its index.
func (r *Ride) AddStation(st Station) uint8 {
	r.Stations = append(r.Stations, st)
	return uint8(len(r.Stations) - 1)
}

// ApplyColours installs the ride's colour templates on a paint session and
// makes the ride its fence checker.
func (r *Ride) ApplyColours(s *paint.Session) {
	c := r.Colours
	s.SetTrackColours(
		paint.NewRemappedImageID(0, c.Main, c.Additional),
		paint.NewRemappedImageID(0, c.Supports, c.Supports),
		paint.NewRemappedImageID(0, c.Main, c.Additional),
	)
	s.Fences = r
}

// StationAt returns the station that has a platform tile at pos, if any.
func (r *Ride) StationAt(pos paint.CoordsXY) (uint8, bool) {
	for i, st := range r.Stations {
		if st.Contains(pos) {
			return uint8(i), true
		}
	}
	return 0, false
}

// HasStationFence implements paint.FenceChecker. A platform edge is fenced
// unless the tile across it is the station's entrance or exit, where
// passengers walk on and off.
func (r *Ride) HasStationFence(pos paint.CoordsXY, edge paint.Direction, stationIndex uint8) bool {
	if int(stationIndex) >= len(r.Stations) {
		return true
	}
	d := directionDelta[edge&3]
	next := paint.CoordsXY{X: pos.X + d.X, Y: pos.Y + d.Y}
	return !r.Stations[stationIndex].IsAccess(next)
}

package domain

import (
	"fmt"
	"math"
)

// Kaaba coordinates, the fixed Qiblah reference point.
const (
	MakkahLatitude  = 21.42249
	MakkahLongitude = 39.826174
)

// QiblahDirection returns the great-circle bearing from the observer
// to the Kaaba, in degrees clockwise from true north, normalized to
// [0, 360). The four-quadrant arctangent makes the sign handling exact
// at the axis crossings.
func QiblahDirection(longitude, latitude float64) float64 {
	delta := MakkahLongitude - longitude
	num := dcos(MakkahLatitude) * dsin(delta)
	denom := dsin(MakkahLatitude)*dcos(latitude) -
		dcos(MakkahLatitude)*dsin(latitude)*dcos(delta)

	bearing := radToDeg(math.Atan2(num, denom))
	if bearing < 0 {
		bearing += 360
	}
	return bearing
}

// Sexagesimal renders a non-negative angle as degrees, arcminutes and
// arcseconds.
func Sexagesimal(angle float64) string {
	deg := math.Floor(angle)
	rem := (angle - deg) * 60
	min := math.Floor(rem)
	sec := math.Floor((rem - min) * 60)
	return fmt.Sprintf("%d° %d' %d''", int(deg), int(min), int(sec))
}

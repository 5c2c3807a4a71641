package domain

import "math"

// epochJD is the midnight of 2000-01-01, the reference epoch of the
// solar series below.
const epochJD = 2451544.5

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }

func dsin(deg float64) float64 { return math.Sin(degToRad(deg)) }
func dcos(deg float64) float64 { return math.Cos(degToRad(deg)) }

// EquationOfTime returns the offset between mean clock time and true
// solar time, in minutes, for the given Julian Day. Truncated Fourier
// series in days since the epoch.
func EquationOfTime(jd JulianDay) float64 {
	n := float64(jd) - epochJD
	g := 357.528 + 0.9856003*n
	c := 1.9148*dsin(g) + 0.02*dsin(2*g) + 0.0003*dsin(3*g)
	lambda := 280.47 + 0.9856003*n + c
	r := -2.468*dsin(2*lambda) + 0.053*dsin(4*lambda) + 0.0014*dsin(6*lambda)
	return (c + r) * 4
}

// SunDeclination returns the sun's angle above the celestial equator,
// in degrees, via mean longitude, mean anomaly and the first-order
// perturbation terms. The arcsine is evaluated as atan(x/sqrt(1-x²))
// so the expression stays defined at the boundaries of its domain.
func SunDeclination(jd JulianDay) float64 {
	n := float64(jd) - epochJD
	epsilon := 23.44 - 0.0000004*n
	l := 280.466 + 0.9856474*n
	g := 357.528 + 0.9856003*n
	lambda := l + 1.915*dsin(g) + 0.02*dsin(2*g)
	x := dsin(epsilon) * dsin(lambda)
	return radToDeg(math.Atan(x / math.Sqrt(1-x*x)))
}

// HourAngleForAltitude solves the spherical triangle for the hour
// angle at which the sun reaches the given zenith distance, returned
// as a signed decimal-hour offset from local solar noon. This is the
// shared primitive behind Fajr, Sunrise, Asr, Maghrib and Isha.
func HourAngleForAltitude(latitude, declination, zenith float64) float64 {
	s := (dcos(zenith) - dsin(latitude)*dsin(declination)) /
		(dcos(latitude) * dcos(declination))
	return radToDeg(math.Atan(-s/math.Sqrt(1-s*s))+math.Pi/2) / 15
}

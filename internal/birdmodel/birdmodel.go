// Package birdmodel implements the Bird & Hulstrom (1981) clear sky
// irradiance model. Reference: https://instesre.org/Solar/BirdModelNew.htm
package birdmodel

import "math"

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// referencePressure is standard sea level pressure in millibar, used to
// scale the relative air mass.
const referencePressure = 1013.0

// Inputs holds the site, time and atmosphere parameters for one model run.
// Longitude is negative west, latitude positive north.
type Inputs struct {
	SolarConstant float64 // Extraterrestrial solar constant, W/m^2
	Longitude     float64 // Degrees
	Latitude      float64 // Degrees
	Elevation     float64 // Meters above sea level

	Year   int
	Month  int
	Day    int
	Hour   float64 // UTC
	Minute float64
	Second float64

	SeaLevelPressure float64 // Millibar
	Albedo           float64 // Ground reflectance, 0-1
	Ozone            float64 // Total column ozone, atm-cm
	WaterVapor       float64 // Precipitable water, cm
	AOT500           float64 // Aerosol optical thickness at 500nm
	AOT380           float64 // Aerosol optical thickness at 380nm
}

// Outputs holds the model results. Direct, Diffuse and Total are on the
// horizontal plane in W/m^2.
type Outputs struct {
	JulianDate        float64
	StationPressure   float64
	EarthSunDistance  float64 // AU
	ZenithAngle       float64 // Degrees
	AirMass           float64
	CorrectedConstant float64 // Distance-corrected solar constant
	Direct            float64
	Diffuse           float64
	Total             float64
}

// StationPressure estimates the pressure at a site from the sea level
// pressure in millibar and the elevation in meters.
func StationPressure(seaLevel, elevation float64) float64 {
	h := elevation / 1000.0
	return seaLevel * math.Exp(-0.119*h-0.0013*h*h)
}

// JulianDate computes the Julian Date from Gregorian calendar components.
func JulianDate(month, day, year int, hour, minute, second float64) float64 {
	m, d, y := month, day, year
	if m < 3 {
		y--
		m += 12
	}

	a := math.Floor(float64(y) / 100.0)
	b := 2 - a + math.Floor(a/4.0)
	jd := math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*(float64(m)+1)) +
		float64(d) + b - 1524.5

	return jd + hour/24.0 + minute/1440.0 + second/86400.0
}

// SolarPosition computes the solar zenith angle in degrees and the
// earth-sun distance in AU for a Julian Date and site coordinates.
func SolarPosition(julianDate, longitude, latitude float64) (zenith, distance float64) {
	t := (julianDate - 2451545.0) / 36525.0

	l0 := 280.46645 + 36000.76983*t + 0.0003032*t*t
	m := 357.52910 + 35999.05030*t - 0.0001559*t*t - 0.00000048*t*t*t
	mRad := m * degToRad

	e := 0.016708617 - 0.000042037*t - 0.0000001236*t*t
	c := (1.914600-0.004817*t-0.000014*t*t)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2.0*mRad) +
		0.000290*math.Sin(3.0*mRad)

	lTrue := math.Mod(l0+c, 360.0)

	f := mRad + c*degToRad
	distance = 1.000001018 * (1.0 - e*e) / (1.0 + e*math.Cos(f))

	siderealTime := math.Mod(280.46061837+
		360.98564736629*(julianDate-2451545.0)+
		0.000387933*t*t-
		t*t*t/38710000.0, 360.0)

	obliquity := 23.0 + 26.0/60.0 + 21.448/3600.0 -
		46.8150/3600.0*t -
		0.00059/3600.0*t*t +
		0.001813/3600.0*t*t*t

	rightAscension := math.Atan2(math.Sin(lTrue*degToRad)*math.Cos(obliquity*degToRad),
		math.Cos(lTrue*degToRad))
	declination := math.Asin(math.Sin(obliquity*degToRad) * math.Sin(lTrue*degToRad))

	hourAngle := siderealTime + longitude - rightAscension/degToRad
	elevation := math.Asin(math.Sin(latitude*degToRad)*math.Sin(declination)+
		math.Cos(latitude*degToRad)*math.Cos(declination)*
			math.Cos(hourAngle*degToRad)) / degToRad

	zenith = 90.0 - elevation
	return zenith, distance
}

// Compute runs the full Bird & Hulstrom transmittance chain.
func Compute(in Inputs) Outputs {
	jd := JulianDate(in.Month, in.Day, in.Year, in.Hour, in.Minute, in.Second)
	p := StationPressure(in.SeaLevelPressure, in.Elevation)
	zenith, distance := SolarPosition(jd, in.Longitude, in.Latitude)

	zRad := zenith * degToRad

	// Relative air mass, pressure-corrected
	airMass := 1.0 / (math.Cos(zRad) + 0.15*math.Pow(93.885-zenith, -1.25))
	airMassP := airMass * p / referencePressure

	// Rayleigh scattering
	tr := math.Exp(-0.0903 * math.Pow(airMassP, 0.84) * (1.0 + airMassP - math.Pow(airMassP, 1.01)))

	// Ozone absorption
	ozm := in.Ozone * airMass
	toz := 1.0 - 0.1611*ozm*math.Pow(1.0+139.48*ozm, -0.3035) -
		0.002715*ozm/(1.0+0.044*ozm+0.0003*ozm*ozm)

	// Mixed gases
	tm := math.Exp(-0.0127 * math.Pow(airMassP, 0.26))

	// Water vapor
	wm := airMass * in.WaterVapor
	tw := 1.0 - 2.4959*wm/((1.0+math.Pow(79.034*wm, 0.6828))+6.385*wm)

	// Aerosols
	tau := 0.2758*in.AOT380 + 0.35*in.AOT500
	ta := math.Exp(-math.Pow(tau, 0.873) * (1.0 + tau - math.Pow(tau, 0.7088)) * math.Pow(airMass, 0.9108))
	taa := 1.0 - 0.1*(1.0-airMass+math.Pow(airMass, 1.06))*(1.0-ta)
	tas := ta / taa
	rs := 0.0685 + (1.0-0.84)*(1.0-tas)

	// Earth-sun distance correction
	rsq := 1.0 / (distance * distance)

	// Direct irradiance on the horizontal plane
	id := rsq * in.SolarConstant * 0.9662 * tr * toz * tm * tw * ta
	idh := id * math.Cos(zRad)

	// Diffuse irradiance
	ias := 0.79 * in.SolarConstant * math.Cos(zRad) * toz * tm * tw * taa
	ias *= (0.5*(1.0-tr) + 0.85*(1.0-tas)) / (1.0 - airMass + math.Pow(airMass, 1.02))

	// Total irradiance with ground reflectance coupling
	total := (idh + ias) / (1.0 - in.Albedo*rs)

	return Outputs{
		JulianDate:        jd,
		StationPressure:   p,
		EarthSunDistance:  distance,
		ZenithAngle:       zenith,
		AirMass:           airMass,
		CorrectedConstant: rsq * in.SolarConstant,
		Direct:            idh,
		Diffuse:           total - idh,
		Total:             total,
	}
}

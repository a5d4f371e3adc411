package services

import (
	"math"
	"strings"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/geo"

	"github.com/shopspring/decimal"
)

const (
	seaLevelAirDensity = 1.225 // kg/m^3 at 15 C
	gravity            = 9.81

	energyDensityGasolineMJ = 34.2 // MJ per litre
	energyDensityDieselMJ   = 38.6

	co2GasolineKgPerL = 2.31
	co2DieselKgPerL   = 2.68
	co2GridKgPerKWh   = 0.233

	calibrationSpeedKMH = 60.0
	calibrationTempC    = 15.0

	idleSpeedKMH   = 5.0
	stopSpacingKM  = 0.4
	minApparentMPS = 0.5

	coldStartFullMin = 10.0
	coldStartZeroMin = 20.0

	comfortLowC        = 18.0
	comfortHighC       = 24.0
	heatingSpanC       = 20.0
	coolingSpanC       = 16.0
	evClimateKW        = 2.0
	maxPrecipitationUp = 0.06
	precipitationPerMM = 0.012
)

var (
	priceGasolinePerL   = decimal.RequireFromString("1.00")
	priceDieselPerL     = decimal.RequireFromString("1.08")
	priceElectricPerKWh = decimal.RequireFromString("0.16")
)

// Rolling resistance multiplier by surface; unknown surfaces roll like asphalt.
var surfaceResistance = map[string]float64{
	"paved":       1.00,
	"asphalt":     1.00,
	"concrete":    1.02,
	"compacted":   1.10,
	"fine_gravel": 1.20,
	"gravel":      1.35,
	"unpaved":     1.40,
	"dirt":        1.45,
	"cobblestone": 1.55,
	"sett":        1.50,
	"grass":       1.65,
}

func SurfaceMultiplier(surface string) float64 {
	if m, ok := surfaceResistance[strings.ToLower(surface)]; ok {
		return m
	}
	return 1.0
}

// AirDensity scales sea-level density by absolute temperature.
func AirDensity(tempC float64) float64 {
	return seaLevelAirDensity * 288.15 / (tempC + 273.15)
}

// Drivetrain load penalty. Light loads run the engine far from its efficient
// band and heavy loads near peak efficiency. The multiplier ramps linearly
// between the bands so that fuel never drops as demanded power rises.
const (
	lightLoadKW     = 2.0
	lightLoadEndKW  = 5.0
	heavyLoadKW     = 60.0
	heavyLoadEndKW  = 80.0
	lightLoadFactor = 1.16
	heavyLoadFactor = 0.93
)

func loadFactor(powerKW float64) float64 {
	switch {
	case powerKW <= lightLoadKW:
		return lightLoadFactor
	case powerKW < lightLoadEndKW:
		f := (powerKW - lightLoadKW) / (lightLoadEndKW - lightLoadKW)
		return lightLoadFactor + f*(1-lightLoadFactor)
	case powerKW <= heavyLoadKW:
		return 1.0
	case powerKW < heavyLoadEndKW:
		f := (powerKW - heavyLoadKW) / (heavyLoadEndKW - heavyLoadKW)
		return 1 + f*(heavyLoadFactor-1)
	default:
		return heavyLoadFactor
	}
}

// Simulator turns route steps into fuel for one vehicle and driving style.
// The calibration factor is derived once per vehicle so that steady cruising
// at the reference speed reproduces the rated combined consumption.
type Simulator struct {
	spec        domain.VehicleSpec
	style       float64
	calibration float64
	// MJ of mechanical work per litre (litre-equivalent) delivered.
	usefulMJPerL float64
}

func NewSimulator(spec domain.VehicleSpec, style domain.DrivingStyle) *Simulator {
	s := &Simulator{
		spec:         spec,
		style:        style.Factor(),
		usefulMJPerL: usefulEnergyPerLitre(spec),
	}
	s.calibration = s.calibrationFactor()
	return s
}

func usefulEnergyPerLitre(spec domain.VehicleSpec) float64 {
	switch spec.FuelType {
	case domain.FuelElectric:
		// 3.6 MJ per kWh, kWhPerLitreEquivalent kWh per litre-equivalent.
		return 3.6 * domain.KWhPerLitreEquivalent * spec.Efficiency
	case domain.FuelDiesel:
		return energyDensityDieselMJ * spec.Efficiency
	default:
		return energyDensityGasolineMJ * spec.Efficiency
	}
}

func (s *Simulator) calibrationFactor() float64 {
	v := calibrationSpeedKMH / 3.6
	drag := 0.5 * AirDensity(calibrationTempC) * s.spec.DragCoefficient * s.spec.FrontalAreaM2 * v * v
	roll := s.spec.RollingResistance * s.spec.MassKg * gravity
	workMJPerKM := (drag + roll) * 1000 / 1e6

	modelL100 := workMJPerKM / s.usefulMJPerL * 100
	return s.spec.ReferenceL100KM() / math.Max(modelL100, 0.01)
}

// CalibrationFactor exposes the per-vehicle scale applied to trip fuel.
func (s *Simulator) CalibrationFactor() float64 { return s.calibration }

// Simulate accumulates calibrated idle, acceleration and cruise fuel over the
// route's steps, then adds cold-start and climate control for the whole trip.
// coords is the decoded route polyline used for step headings; weather may be nil.
func (s *Simulator) Simulate(steps []domain.RouteStep, coords []domain.Coordinates, durationS float64, weather *domain.WeatherSample) domain.FuelBreakdown {
	w := domain.DefaultWeather
	if weather != nil {
		w = *weather
	}
	rho := AirDensity(w.TemperatureC)
	precip := 1 + math.Min(maxPrecipitationUp, math.Max(0, w.PrecipitationMM)*precipitationPerMM)

	var idle, accel, cruise float64
	for i, step := range steps {
		dKM := step.DistanceM / 1000
		tHR := step.DurationS / 3600
		if dKM <= 0 || tHR <= 0 {
			continue
		}

		class := ClassifyRoad(step)
		spd := StepSpeedKMH(step, class)

		if spd < idleSpeedKMH {
			idle += s.spec.IdleRateLPH * tHR
			continue
		}

		seg := s.segmentFuel(step.DistanceM, spd, SurfaceMultiplier(step.Surface)*precip, rho, s.headwindKMH(i, step, coords, w))
		if IsStopAndGo(step, class) {
			stops := math.Max(1, dKM/stopSpacingKM)
			accel += s.spec.AccelCostL * stops * s.style * (1 - s.spec.RegenFraction*0.5)
		}
		cruise += seg
	}

	fb := domain.FuelBreakdown{
		Idle:         idle * s.calibration,
		Acceleration: accel * s.calibration,
		Cruise:       cruise * s.calibration,
		ColdStart:    s.ColdStart(durationS / 60),
		Climate:      s.Climate(w.TemperatureC, durationS/3600),
	}
	fb.Total = fb.Idle + fb.Acceleration + fb.Cruise + fb.ColdStart + fb.Climate
	return fb
}

// segmentFuel returns uncalibrated litres for a stretch driven at speedKMH.
func (s *Simulator) segmentFuel(distM, speedKMH, rollMult, rho, headwindKMH float64) float64 {
	vAir := math.Max(minApparentMPS, (speedKMH+headwindKMH)/3.6)
	v := speedKMH / 3.6

	drag := 0.5 * rho * s.spec.DragCoefficient * s.spec.FrontalAreaM2 * vAir * vAir
	roll := s.spec.RollingResistance * rollMult * s.spec.MassKg * gravity
	force := drag + roll

	workMJ := math.Max(0, force*distM) / 1e6
	powerKW := force * v / 1000

	return workMJ * loadFactor(powerKW) * s.style / s.usefulMJPerL
}

// headwindKMH projects the wind onto the step heading. Positive values oppose
// the direction of travel. The heading comes from the step's own way-point
// span when available, otherwise from the i-th polyline segment.
func (s *Simulator) headwindKMH(i int, step domain.RouteStep, coords []domain.Coordinates, w domain.WeatherSample) float64 {
	if w.WindSpeedKMH <= 0 || len(coords) < 2 {
		return 0
	}

	var from, to domain.Coordinates
	if wp := step.WayPoints; len(wp) == 2 && wp[0] >= 0 && wp[0] < wp[1] && wp[1] < len(coords) {
		from, to = coords[wp[0]], coords[wp[1]]
	} else {
		si := min(i, len(coords)-2)
		from, to = coords[si], coords[si+1]
	}
	if from == to {
		return 0
	}

	heading := geo.BearingDeg(from, to)
	return w.WindSpeedKMH * math.Cos((w.WindDirectionDeg-heading)*math.Pi/180)
}

// ColdStart is the warm-up surcharge for a trip of the given minutes. It is
// applied in full up to 10 minutes and tapers linearly to zero at 20.
func (s *Simulator) ColdStart(durationMin float64) float64 {
	if s.spec.IsElectric() {
		return 0
	}
	base := s.spec.ColdStartML / 1000
	switch {
	case durationMin <= coldStartFullMin:
		return base
	case durationMin <= coldStartZeroMin:
		return base * (1 - (durationMin-coldStartFullMin)/(coldStartZeroMin-coldStartFullMin))
	default:
		return 0
	}
}

// Climate is heating or cooling energy over the trip. Nothing is used inside
// the 18-24 C comfort band.
func (s *Simulator) Climate(tempC, durationHr float64) float64 {
	var intensity float64
	switch {
	case tempC < comfortLowC:
		intensity = math.Min(1, (comfortLowC-tempC)/heatingSpanC)
	case tempC > comfortHighC:
		intensity = math.Min(1, (tempC-comfortHighC)/coolingSpanC)
	default:
		return 0
	}

	if s.spec.IsElectric() {
		return evClimateKW * intensity * durationHr / domain.KWhPerLitreEquivalent
	}
	return s.spec.HVACLPH * intensity * durationHr
}

// Emissions returns tailpipe or grid CO2 in kg for the given litres.
func Emissions(spec domain.VehicleSpec, litres float64) float64 {
	switch spec.FuelType {
	case domain.FuelElectric:
		return litres * domain.KWhPerLitreEquivalent * co2GridKgPerKWh
	case domain.FuelDiesel:
		return litres * co2DieselKgPerL
	default:
		return litres * co2GasolineKgPerL
	}
}

// Cost prices the given litres at the fuel's unit price, rounded to cents.
func Cost(spec domain.VehicleSpec, litres float64) decimal.Decimal {
	amount := decimal.NewFromFloat(litres)
	switch spec.FuelType {
	case domain.FuelElectric:
		amount = amount.Mul(decimal.NewFromFloat(domain.KWhPerLitreEquivalent)).Mul(priceElectricPerKWh)
	case domain.FuelDiesel:
		amount = amount.Mul(priceDieselPerL)
	default:
		amount = amount.Mul(priceGasolinePerL)
	}
	return amount.Round(2)
}

// EnergyKWh converts electric litre-equivalent back to battery kWh; 0 for
// combustion vehicles.
func EnergyKWh(spec domain.VehicleSpec, litres float64) float64 {
	if !spec.IsElectric() {
		return 0
	}
	return litres * domain.KWhPerLitreEquivalent
}

package services

import (
	"strings"

	"ecoroute-service/internal/domain"
)

type RoadClass string

const (
	RoadMotorway      RoadClass = "motorway"
	RoadMotorwayLink  RoadClass = "motorway_link"
	RoadTrunk         RoadClass = "trunk"
	RoadTrunkLink     RoadClass = "trunk_link"
	RoadPrimary       RoadClass = "primary"
	RoadPrimaryLink   RoadClass = "primary_link"
	RoadSecondary     RoadClass = "secondary"
	RoadSecondaryLink RoadClass = "secondary_link"
	RoadTertiary      RoadClass = "tertiary"
	RoadTertiaryLink  RoadClass = "tertiary_link"
	RoadResidential   RoadClass = "residential"
	RoadLivingStreet  RoadClass = "living_street"
	RoadUnclassified  RoadClass = "unclassified"
	RoadService       RoadClass = "service"
)

// Typical free-flow speed per class in km/h.
var roadClassSpeedKMH = map[RoadClass]float64{
	RoadMotorway:      110,
	RoadMotorwayLink:  80,
	RoadTrunk:         90,
	RoadTrunkLink:     70,
	RoadPrimary:       70,
	RoadPrimaryLink:   55,
	RoadSecondary:     60,
	RoadSecondaryLink: 50,
	RoadTertiary:      50,
	RoadTertiaryLink:  40,
	RoadResidential:   30,
	RoadLivingStreet:  15,
	RoadUnclassified:  50,
	RoadService:       20,
}

const defaultRoadSpeedKMH = 50.0

// Reported speeds outside this band are treated as noise.
const (
	minPlausibleSpeedKMH = 3.0
	maxPlausibleSpeedKMH = 200.0
)

func (c RoadClass) SpeedKMH() float64 {
	if v, ok := roadClassSpeedKMH[c]; ok {
		return v
	}
	return defaultRoadSpeedKMH
}

// ordered: first match wins
var roadClassKeywords = []struct {
	class    RoadClass
	keywords []string
}{
	{RoadMotorway, []string{"motorway", "highway", "interstate", "freeway", "autobahn"}},
	{RoadTrunk, []string{"trunk", "a-road"}},
	{RoadPrimary, []string{"primary"}},
	{RoadSecondary, []string{"secondary"}},
}

var residentialKeywords = []string{"residential", "close", "grove"}

// ClassifyRoad infers a road class from the step's street name. The
// instruction often names the next road ("toward Highway 1"), so it is only
// consulted for roundabouts.
func ClassifyRoad(step domain.RouteStep) RoadClass {
	name := strings.ToLower(step.Name)

	for _, rk := range roadClassKeywords {
		if containsAny(name, rk.keywords) {
			return rk.class
		}
	}
	if strings.Contains(strings.ToLower(step.Instruction), "roundabout") {
		return RoadSecondary
	}
	if containsAny(name, residentialKeywords) {
		return RoadResidential
	}
	return RoadUnclassified
}

// StepSpeedKMH prefers the reported distance/duration speed when plausible,
// otherwise the class default.
func StepSpeedKMH(step domain.RouteStep, class RoadClass) float64 {
	if step.DistanceM > 0 && step.DurationS > 0 {
		v := (step.DistanceM / 1000) / (step.DurationS / 3600)
		if v > minPlausibleSpeedKMH && v < maxPlausibleSpeedKMH {
			return v
		}
	}
	return class.SpeedKMH()
}

var stopKeywords = []string{
	"turn", "traffic", "junction", "roundabout", "merge",
	"exit", "ramp", "stop", "signal", "crossing",
}

// Maneuver codes that imply slowing or stopping: turns, sharp turns, slight
// right, straight through a junction, roundabout entry, arrive, depart.
var stopManeuverTypes = map[int]struct{}{
	0: {}, 1: {}, 2: {}, 3: {}, 5: {}, 6: {}, 7: {}, 10: {}, 11: {},
}

var stopRoadClasses = map[RoadClass]struct{}{
	RoadResidential:  {},
	RoadLivingStreet: {},
	RoadService:      {},
}

// IsStopAndGo reports whether the step involves slowing, stopping, or
// re-accelerating. Rules are checked in order: instruction keywords, then the
// maneuver code, then the road class.
func IsStopAndGo(step domain.RouteStep, class RoadClass) bool {
	if containsAny(strings.ToLower(step.Instruction), stopKeywords) {
		return true
	}
	if step.ManeuverType != nil {
		if _, ok := stopManeuverTypes[*step.ManeuverType]; ok {
			return true
		}
	}
	_, ok := stopRoadClasses[class]
	return ok
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

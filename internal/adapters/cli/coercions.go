package cli

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/recipe"
)

var (
	rateQuantityPattern = regexp.MustCompile(`^([0-9]+|[0-9]*\.[0-9]+)/([0-9]+|[0-9]*\.[0-9]+)?([smh])?$`)
	percentPattern      = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)%$`)
)

var timeUnitSeconds = map[string]float64{
	"s": 1,
	"m": 60,
	"h": 60 * 60,
}

// ParseQuantity reads a quantity flag.
//
//	"12"     twelve producers of the root item
//	"30/m"   thirty units per minute
//	"5/2s"   five units every two seconds
//	"1.5/"   one and a half units per second
func ParseQuantity(input string) (production.Quantity, error) {
	input = strings.TrimSpace(input)

	if value, err := strconv.ParseFloat(input, 64); err == nil {
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return production.Quantity{}, &production.InvalidQuantityError{
				Input:  input,
				Reason: "cannot specify the number of producers with a non-integer value",
			}
		}
		if value > math.MaxInt32 {
			return production.Quantity{}, &production.InvalidQuantityError{Input: input, Reason: "producer count too large"}
		}
		quantity := production.ProducerQuantity(int(value))
		if err := quantity.Validate(); err != nil {
			return production.Quantity{}, &production.InvalidQuantityError{Input: input, Reason: "producer count must be positive"}
		}
		return quantity, nil
	}

	match := rateQuantityPattern.FindStringSubmatch(input)
	if match == nil {
		return production.Quantity{}, &production.InvalidQuantityError{Input: input, Reason: "unrecognized quantity"}
	}

	numerator, _ := strconv.ParseFloat(match[1], 64)
	denominator := 1.0
	if match[2] != "" {
		denominator, _ = strconv.ParseFloat(match[2], 64)
	}
	unit := match[3]
	if unit == "" {
		unit = "s"
	}

	if denominator == 0 {
		return production.Quantity{}, &production.InvalidQuantityError{Input: input, Reason: "time denominator must not be zero"}
	}

	quantity := production.RateQuantity(numerator / (denominator * timeUnitSeconds[unit]))
	if err := quantity.Validate(); err != nil {
		return production.Quantity{}, &production.InvalidQuantityError{Input: input, Reason: "rate must be positive"}
	}
	return quantity, nil
}

// ParseSpeed reads a speed flag for one producer kind.
// The optional "+P%" suffix adds P percent of the base speed as productivity bonus:
// "max", "blue", "1.25+40%", "30%" (mines), "2".
func ParseSpeed(source recipe.Source, input string) (production.SpeedMultiplier, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	invalid := &production.InvalidSpeedInputError{Source: source.String(), Input: input}

	base, bonusPercent := normalized, 0.0
	if i := strings.LastIndex(normalized, "+"); i > 0 && strings.HasSuffix(normalized, "%") {
		match := percentPattern.FindStringSubmatch(normalized[i+1:])
		if match == nil {
			return production.SpeedMultiplier{}, invalid
		}
		bonusPercent, _ = strconv.ParseFloat(match[1], 64)
		base = normalized[:i]
	}

	multiplier, ok := parseBaseSpeed(source, base)
	if !ok || multiplier.Validate() != nil {
		return production.SpeedMultiplier{}, invalid
	}

	multiplier.ProductionBonus += multiplier.Base * bonusPercent / 100
	return multiplier, nil
}

func parseBaseSpeed(source recipe.Source, input string) (production.SpeedMultiplier, bool) {
	switch source {
	case recipe.SourceAssembler:
		return parseNamedSpeed(input, map[string]float64{"max": 1.25, "grey": 0.5, "blue": 0.75, "yellow": 1.25})
	case recipe.SourceFurnace:
		return parseNamedSpeed(input, map[string]float64{"max": 2, "stone": 1, "steel": 2, "electric": 2})
	case recipe.SourceMine:
		return parseMineSpeed(input)
	case recipe.SourceLab:
		if percent, ok := parsePercent(input); ok {
			return production.SpeedMultiplier{Base: 1 + percent/100}, true
		}
		return parseNamedSpeed(input, map[string]float64{"max": 3.5})
	case recipe.SourceChem, recipe.SourcePump, recipe.SourceRocketSilo:
		if percent, ok := parsePercent(input); ok {
			return production.SpeedMultiplier{Base: 1 + percent/100}, true
		}
		return parseNamedSpeed(input, map[string]float64{"max": 1, "base": 1})
	case recipe.SourceNone:
		return production.SpeedMultiplier{}, false
	}
	return production.SpeedMultiplier{}, false
}

// parseMineSpeed handles drill presets; percentages are mining productivity on
// an electric drill and plain numbers scale the electric drill speed
func parseMineSpeed(input string) (production.SpeedMultiplier, bool) {
	const electricDrill = 0.5

	switch input {
	case "max":
		return production.SpeedMultiplier{Base: electricDrill, ProductionBonus: 0.15}, true
	case "burner":
		return production.SpeedMultiplier{Base: 0.25}, true
	case "electric":
		return production.SpeedMultiplier{Base: electricDrill}, true
	}

	if percent, ok := parsePercent(input); ok {
		return production.SpeedMultiplier{Base: electricDrill, ProductionBonus: electricDrill * percent / 100}, true
	}
	if value, ok := parseNumber(input); ok {
		return production.SpeedMultiplier{Base: electricDrill * value}, true
	}
	return production.SpeedMultiplier{}, false
}

func parseNamedSpeed(input string, presets map[string]float64) (production.SpeedMultiplier, bool) {
	if value, ok := presets[input]; ok {
		return production.SpeedMultiplier{Base: value}, true
	}
	if value, ok := parseNumber(input); ok {
		return production.SpeedMultiplier{Base: value}, true
	}
	return production.SpeedMultiplier{}, false
}

func parsePercent(input string) (float64, bool) {
	match := percentPattern.FindStringSubmatch(input)
	if match == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	return value, err == nil
}

func parseNumber(input string) (float64, bool) {
	value, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// ParseSpeedConfig coerces one speed input per producer kind; kinds without an
// input keep base speed
func ParseSpeedConfig(inputs map[recipe.Source]string) (production.SpeedConfig, error) {
	speeds := production.DefaultSpeedConfig()
	for _, source := range recipe.AllSources() {
		input, ok := inputs[source]
		if !ok || input == "" || source == recipe.SourceNone {
			continue
		}
		multiplier, err := ParseSpeed(source, input)
		if err != nil {
			return production.SpeedConfig{}, err
		}
		speeds = speeds.With(source, multiplier)
	}
	return speeds, nil
}

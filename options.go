package huefx

import (
	"fmt"
	"strconv"
	"strings"
)

// Option keys accepted by the named-option syntax.
const (
	optHueDegrees = "h" // hue angle degrees expression
	optHueRadians = "H" // hue angle radians expression
	optSaturation = "s" // saturation expression
)

// optionSet holds the raw fields of one named-option request. Nothing
// is applied to the filter until the whole request has parsed and
// passed mutual-exclusion validation.
type optionSet struct {
	hueDegExpr string
	hasHueDeg  bool
	hueExprSrc string
	hasHue     bool
	satExpr    string
	hasSat     bool
}

// parseNamedOptions parses "key=value" pairs separated by ':'.
func parseNamedOptions(args string) (optionSet, error) {
	var opts optionSet
	for _, pair := range strings.Split(args, ":") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return optionSet{}, fmt.Errorf("%w: option %q is not in key=value form", ErrInvalidSyntax, pair)
		}
		switch key {
		case optHueDegrees:
			opts.hueDegExpr, opts.hasHueDeg = value, true
		case optHueRadians:
			opts.hueExprSrc, opts.hasHue = value, true
		case optSaturation:
			opts.satExpr, opts.hasSat = value, true
		default:
			return optionSet{}, fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}
	return opts, nil
}

// parseLegacy parses the compatibility "hue[:saturation]" form: a hue
// angle in degrees, optionally followed by a saturation scalar. hasSat
// reports whether the saturation field was present; when absent the
// caller retains its previous saturation.
func parseLegacy(args string) (hueDeg, sat float64, hasSat bool, err error) {
	huePart, satPart, hasSat := strings.Cut(args, ":")

	hueDeg, err = strconv.ParseFloat(huePart, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: argument %q must be in the form 'hue[:saturation]'", ErrInvalidSyntax, args)
	}
	if !hasSat {
		return hueDeg, 0, false, nil
	}

	sat, err = strconv.ParseFloat(satPart, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: argument %q must be in the form 'hue[:saturation]'", ErrInvalidSyntax, args)
	}
	return hueDeg, sat, true, nil
}

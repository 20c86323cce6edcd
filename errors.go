package huefx

import "errors"

// Sentinel errors for filter operations.
// These errors enable reliable error classification using errors.Is().

// Reconfiguration errors. A rejected request never leaves the filter in
// a partially-applied state, with the single documented exception of
// per-field expression rollback (see Configure).
var (
	// ErrInvalidSyntax indicates a malformed arguments string.
	ErrInvalidSyntax = errors.New("invalid arguments syntax")

	// ErrExclusiveHueOptions indicates both the radians (H) and degrees (h)
	// hue expressions were supplied in one request.
	ErrExclusiveHueOptions = errors.New("H and h options are incompatible and cannot be specified at the same time")

	// ErrSaturationRange indicates a legacy-form saturation outside [-10, 10].
	ErrSaturationRange = errors.New("saturation out of range")

	// ErrExpressionParse indicates an expression failed to compile.
	ErrExpressionParse = errors.New("expression parse failed")

	// ErrUnknownOption indicates an unrecognized option key.
	ErrUnknownOption = errors.New("unknown option")
)

// Command and stream errors.
var (
	// ErrUnknownCommand indicates an unsupported filter command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnsupportedFormat indicates a pixel format outside the
	// compatibility list.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrNotConfigured indicates frame processing was attempted before
	// format negotiation.
	ErrNotConfigured = errors.New("filter not configured with a stream format")
)

package huefx

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/huefx/eval"
	"github.com/opd-ai/huefx/video"
)

// Default parameter values and the valid saturation range. Out-of-range
// saturation is rejected by the legacy configuration syntax but merely
// clamped (with a warning) when produced by a per-frame expression.
const (
	DefaultHue        = 0.0
	DefaultSaturation = 1.0
	SatMin            = -10.0
	SatMax            = 10.0
)

// mode selects how the filter's parameters are resolved per frame.
type mode int

const (
	// modeStatic uses the stored hue/saturation values as-is.
	modeStatic mode = iota
	// modeExpression re-evaluates configured expressions every frame.
	modeExpression
	// modeLegacyCompact uses static values parsed from the compact
	// "hue[:saturation]" syntax.
	modeLegacyCompact
)

func (m mode) String() string {
	switch m {
	case modeStatic:
		return "static"
	case modeExpression:
		return "expression"
	case modeLegacyCompact:
		return "legacy"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// hueExprKind distinguishes the two mutually exclusive hue expression
// units. Holding a single hueExpression value per filter makes the
// exclusivity structural rather than checked per use.
type hueExprKind int

const (
	hueExprNone hueExprKind = iota
	hueExprRadians
	hueExprDegrees
)

// hueExpression is a compiled hue expression together with its unit.
type hueExpression struct {
	kind     hueExprKind
	src      string
	compiled eval.Compiled
}

// Filter adjusts the hue and saturation of planar YUV video.
//
// It rotates every pixel's (U, V) chrominance vector by the hue angle
// and scales it by the saturation, leaving luma (and alpha) untouched.
// Parameters are static by default and can be driven per frame by
// expressions over the frame ordinal, timestamps, timebase, and frame
// rate.
//
// A Filter is single-threaded: the host must serialize reconfiguration
// (Configure, ProcessCommand, SetFormat) against frame delivery. Within
// one frame, BeginFrame fixes the coefficients before the first slice
// and they do not change mid-frame.
type Filter struct {
	service eval.Service

	mode       mode
	hueDeg     float64 // hue expressed in degrees
	hue        float64 // hue expressed in radians
	saturation float64

	hueExpr     hueExpression
	satExprSrc  string
	satCompiled eval.Compiled

	coeff video.Coefficients

	format     video.PixelFormat
	hsub, vsub int
	configured bool
	timeBase   video.Rational
	frameRate  video.Rational
	tb         float64
	rate       float64

	frames uint64 // output frames processed on this stream
}

// New creates a filter with the identity configuration (hue 0,
// saturation 1) and the default expression service.
func New() *Filter {
	return NewWithService(eval.NewService())
}

// NewWithService creates a filter using the supplied expression
// service. Hosts embedding their own expression grammar inject it here.
func NewWithService(service eval.Service) *Filter {
	return &Filter{
		service:    service,
		mode:       modeStatic,
		hue:        DefaultHue,
		saturation: DefaultSaturation,
		coeff:      video.ComputeCoefficients(DefaultHue, DefaultSaturation),
	}
}

// Hue returns the current hue angle in radians.
func (f *Filter) Hue() float64 { return f.hue }

// HueDegrees returns the current hue angle in degrees.
func (f *Filter) HueDegrees() float64 { return f.hueDeg }

// Saturation returns the current saturation scalar.
func (f *Filter) Saturation() float64 { return f.saturation }

// HueExpression returns the configured radians hue expression source,
// or "" if none is set.
func (f *Filter) HueExpression() string {
	if f.hueExpr.kind == hueExprRadians {
		return f.hueExpr.src
	}
	return ""
}

// HueDegreesExpression returns the configured degrees hue expression
// source, or "" if none is set.
func (f *Filter) HueDegreesExpression() string {
	if f.hueExpr.kind == hueExprDegrees {
		return f.hueExpr.src
	}
	return ""
}

// SaturationExpression returns the configured saturation expression
// source, or "" if none is set.
func (f *Filter) SaturationExpression() string { return f.satExprSrc }

// Coefficients returns the fixed-point rotation pair in effect.
func (f *Filter) Coefficients() video.Coefficients { return f.coeff }

// FrameCount returns the number of frames processed since the last
// stream (re)configuration.
func (f *Filter) FrameCount() uint64 { return f.frames }

// SetFormat negotiates the stream format: it derives the chroma
// subsampling factors from the pixel format, fixes the stream timebase
// and frame rate, and resets the frame counter. An unsupported format
// is rejected without touching the current stream state.
func (f *Filter) SetFormat(format video.PixelFormat, timeBase, frameRate video.Rational) error {
	if !format.Supported() {
		logrus.WithFields(logrus.Fields{
			"function": "Filter.SetFormat",
			"format":   format.String(),
		}).Error("Pixel format not in compatibility list")
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	f.format = format
	f.hsub, f.vsub = format.ChromaShift()
	f.timeBase = timeBase
	f.frameRate = frameRate
	f.tb = timeBase.Float()
	f.rate = frameRate.Float()
	f.frames = 0
	f.configured = true

	logrus.WithFields(logrus.Fields{
		"function":   "Filter.SetFormat",
		"format":     format.String(),
		"hsub":       f.hsub,
		"vsub":       f.vsub,
		"time_base":  timeBase.String(),
		"frame_rate": frameRate.String(),
	}).Debug("Stream format configured")
	return nil
}

// ProcessCommand dispatches a filter command. The only supported
// command is "reinit", which reconfigures the filter from the given
// arguments string.
func (f *Filter) ProcessCommand(cmd, args string) error {
	if cmd != "reinit" {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return f.Configure(args)
}

// Configure applies a reconfiguration request.
//
// An arguments string containing '=' is parsed as named options
// ("h=expr", "H=expr", "s=expr" separated by ':'); anything else is
// parsed as the compact "hue[:saturation]" form with hue in degrees.
// An empty string only recomputes the coefficients.
//
// A request that fails syntax or mutual-exclusion validation is
// rejected with no state change. A named request whose expression fails
// to compile rolls back only that field; fields applied earlier in the
// same request stay applied. This per-field granularity is long-standing
// behavior that existing call sites rely on.
func (f *Filter) Configure(args string) error {
	if args != "" {
		var err error
		if strings.Contains(args, "=") {
			err = f.applyNamedOptions(args)
		} else {
			err = f.applyLegacy(args)
		}
		if err != nil {
			return err
		}
	}

	// Static values are always valid here, so a filter with no
	// expressions configured has coefficients ready before the first
	// frame.
	f.coeff = video.ComputeCoefficients(f.hue, f.saturation)
	return nil
}

// applyNamedOptions handles the named-option syntax.
func (f *Filter) applyNamedOptions(args string) error {
	opts, err := parseNamedOptions(args)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Filter.Configure",
			"args":     args,
			"error":    err.Error(),
		}).Error("Rejected malformed named-option request")
		return err
	}

	if opts.hasHue && opts.hasHueDeg {
		logrus.WithFields(logrus.Fields{
			"function": "Filter.Configure",
			"h":        opts.hueDegExpr,
			"H":        opts.hueExprSrc,
		}).Error("Rejected request with both hue expression units")
		return ErrExclusiveHueOptions
	}

	// An axis with no option supplied retains its previous expression
	// unchanged; the request is a no-op for that axis.
	if opts.hasHueDeg {
		compiled, err := f.service.Compile(opts.hueDegExpr)
		if err != nil {
			return f.rejectExpression(optHueDegrees, opts.hueDegExpr, err)
		}
		f.hueExpr = hueExpression{kind: hueExprDegrees, src: opts.hueDegExpr, compiled: compiled}
	} else if opts.hasHue {
		compiled, err := f.service.Compile(opts.hueExprSrc)
		if err != nil {
			return f.rejectExpression(optHueRadians, opts.hueExprSrc, err)
		}
		f.hueExpr = hueExpression{kind: hueExprRadians, src: opts.hueExprSrc, compiled: compiled}
	}

	if opts.hasSat {
		compiled, err := f.service.Compile(opts.satExpr)
		if err != nil {
			// The hue field applied above is deliberately left in
			// place: rollback is per field, not per request.
			return f.rejectExpression(optSaturation, opts.satExpr, err)
		}
		f.satExprSrc, f.satCompiled = opts.satExpr, compiled
	}

	f.mode = modeExpression

	logrus.WithFields(logrus.Fields{
		"function": "Filter.Configure",
		"H_expr":   f.HueExpression(),
		"h_expr":   f.HueDegreesExpression(),
		"s_expr":   f.satExprSrc,
	}).Debug("Expression options applied")
	return nil
}

// rejectExpression reports a compile failure for one option field. The
// field keeps its previous value.
func (f *Filter) rejectExpression(key, src string, err error) error {
	logrus.WithFields(logrus.Fields{
		"function": "Filter.Configure",
		"option":   key,
		"expr":     src,
		"error":    err.Error(),
	}).Error("Expression parsing failed")
	return fmt.Errorf("%w for option %s=%q: %v", ErrExpressionParse, key, src, err)
}

// applyLegacy handles the compact "hue[:saturation]" syntax. Unlike the
// per-frame evaluator this entry path rejects out-of-range saturation
// outright instead of clamping.
func (f *Filter) applyLegacy(args string) error {
	hueDeg, sat, hasSat, err := parseLegacy(args)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Filter.Configure",
			"args":     args,
		}).Error("Invalid legacy syntax, must be in the form 'hue[:saturation]'")
		return err
	}
	if hasSat && (sat < SatMin || sat > SatMax) {
		logrus.WithFields(logrus.Fields{
			"function": "Filter.Configure",
			"value":    sat,
			"min":      SatMin,
			"max":      SatMax,
		}).Error("Invalid saturation value")
		return fmt.Errorf("%w: %g must be included between %g and +%g", ErrSaturationRange, sat, SatMin, SatMax)
	}

	f.hueDeg = hueDeg
	f.hue = hueDeg * math.Pi / 180
	if hasSat {
		f.saturation = sat
	}
	f.mode = modeLegacyCompact

	logrus.WithFields(logrus.Fields{
		"function":   "Filter.Configure",
		"hue":        f.hue,
		"hue_deg":    f.hueDeg,
		"saturation": f.saturation,
	}).Debug("Legacy options applied")
	return nil
}

// frameVariables builds the per-frame snapshot handed to expressions.
// An unknown timestamp or frame rate yields NaN, which is not an error.
func (f *Filter) frameVariables(src *video.Frame) eval.Variables {
	vars := eval.Variables{
		N:   float64(f.frames),
		TB:  f.tb,
		R:   f.rate,
		PTS: math.NaN(),
		T:   math.NaN(),
	}
	if src.PTS != video.NoPTS {
		vars.PTS = float64(src.PTS)
		vars.T = float64(src.PTS) * f.tb
	}
	return vars
}

// refreshParams re-evaluates the configured expressions for one frame
// and recomputes the rotation coefficients.
//
// A runtime evaluation failure or NaN result retains the previous value
// for that axis with a warning; expressions were validated at compile
// time, so this is exceptional. Out-of-range saturation is clamped and
// warned about, never rejected. NaN can therefore never reach the
// fixed-point conversion.
func (f *Filter) refreshParams(vars eval.Variables) {
	if f.satCompiled != nil {
		value, err := f.satCompiled.Evaluate(vars)
		switch {
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"function": "Filter.refreshParams",
				"field":    "saturation",
				"expr":     f.satExprSrc,
				"error":    err.Error(),
			}).Warn("Saturation expression failed, retaining previous value")
		case math.IsNaN(value):
			logrus.WithFields(logrus.Fields{
				"function": "Filter.refreshParams",
				"field":    "saturation",
				"expr":     f.satExprSrc,
			}).Warn("Saturation expression yielded NaN, retaining previous value")
		case value < SatMin || value > SatMax:
			clamped := math.Min(math.Max(value, SatMin), SatMax)
			logrus.WithFields(logrus.Fields{
				"function": "Filter.refreshParams",
				"field":    "saturation",
				"value":    value,
				"min":      SatMin,
				"max":      SatMax,
				"clamped":  clamped,
			}).Warn("Saturation value not in range, clamping")
			f.saturation = clamped
		default:
			f.saturation = value
		}
	}

	if f.hueExpr.compiled != nil {
		value, err := f.hueExpr.compiled.Evaluate(vars)
		switch {
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"function": "Filter.refreshParams",
				"field":    "hue",
				"expr":     f.hueExpr.src,
				"error":    err.Error(),
			}).Warn("Hue expression failed, retaining previous value")
		case math.IsNaN(value):
			logrus.WithFields(logrus.Fields{
				"function": "Filter.refreshParams",
				"field":    "hue",
				"expr":     f.hueExpr.src,
			}).Warn("Hue expression yielded NaN, retaining previous value")
		case f.hueExpr.kind == hueExprDegrees:
			f.hueDeg = value
			f.hue = value * math.Pi / 180
		default:
			f.hue = value
			f.hueDeg = value * 180 / math.Pi
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Filter.refreshParams",
		"hue":        f.hue,
		"saturation": f.saturation,
		"t":          vars.T,
		"n":          vars.N,
	}).Debug("Per-frame parameters refreshed")

	f.coeff = video.ComputeCoefficients(f.hue, f.saturation)
}

// BeginFrame starts processing one output frame: it snapshots the
// frame's expression variables, refreshes the coefficients when the
// filter is in expression mode, and advances the frame ordinal. It must
// be called before the frame's first slice; the coefficients then stay
// fixed for all slices of that frame.
func (f *Filter) BeginFrame(src *video.Frame) error {
	if !f.configured {
		return ErrNotConfigured
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("invalid source frame: %w", err)
	}
	if src.Format != f.format {
		return fmt.Errorf("frame format %s does not match negotiated format %s", src.Format, f.format)
	}

	if f.mode == modeExpression {
		f.refreshParams(f.frameVariables(src))
	}
	f.frames++
	return nil
}

// ApplySlice processes the horizontal strip of h luma rows starting at
// luma row y: luma (and alpha) rows are copied unchanged and the
// corresponding chroma rows are rotated with the coefficients fixed by
// BeginFrame. Slicing a frame into consecutive strips produces output
// identical to one whole-frame call.
func (f *Filter) ApplySlice(dst, src *video.Frame, y, h int) error {
	if !f.configured {
		return ErrNotConfigured
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("invalid source frame: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("invalid destination frame: %w", err)
	}
	if dst.Width != src.Width || dst.Height != src.Height || dst.Format != src.Format {
		return fmt.Errorf("destination geometry %s %dx%d does not match source %s %dx%d",
			dst.Format, dst.Width, dst.Height, src.Format, src.Width, src.Height)
	}
	if y < 0 || h < 0 || y+h > src.Height {
		return fmt.Errorf("slice [%d, %d) outside frame height %d", y, y+h, src.Height)
	}

	video.CopyPlane(dst.Y[y*dst.YStride:], dst.YStride,
		src.Y[y*src.YStride:], src.YStride, src.Width, h)
	if src.Format.HasAlpha() {
		video.CopyPlane(dst.A[y*dst.YStride:], dst.YStride,
			src.A[y*src.YStride:], src.YStride, src.Width, h)
	}

	// Map the luma strip to chroma rows so consecutive strips tile the
	// chroma plane exactly even when strip heights are not multiples of
	// the subsampling factor.
	cy := y >> f.vsub
	ch := ((y + h) >> f.vsub) - cy
	cw := src.Width >> f.hsub
	if ch > 0 {
		video.RotateChroma(
			dst.U[cy*dst.CStride:], dst.V[cy*dst.CStride:], dst.CStride,
			src.U[cy*src.CStride:], src.V[cy*src.CStride:], src.CStride,
			cw, ch, f.coeff)
	}
	return nil
}

// Apply processes one whole frame: BeginFrame followed by a single
// full-height slice. Frame properties (the presentation timestamp) are
// carried over to the destination.
func (f *Filter) Apply(dst, src *video.Frame) error {
	if err := f.BeginFrame(src); err != nil {
		return err
	}
	if err := f.ApplySlice(dst, src, 0, src.Height); err != nil {
		return err
	}
	dst.PTS = src.PTS
	return nil
}

// Reset clears the frame counter, as on a stream teardown/reinit.
func (f *Filter) Reset() {
	f.frames = 0
}

// Close releases the compiled expressions. The filter keeps its static
// values and can be reconfigured afterwards.
func (f *Filter) Close() error {
	f.hueExpr = hueExpression{}
	f.satExprSrc = ""
	f.satCompiled = nil
	return nil
}

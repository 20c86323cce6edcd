package eval

// Variable names available to expressions.
const (
	VarN   = "n"   // frame ordinal, counted from 0
	VarPTS = "pts" // presentation timestamp in timebase units
	VarR   = "r"   // frame rate
	VarT   = "t"   // timestamp in seconds
	VarTB  = "tb"  // timebase
)

// VarNames lists the fixed variable-name set, in declaration order.
var VarNames = []string{VarN, VarPTS, VarR, VarT, VarTB}

// Variables is the per-frame snapshot an expression evaluates against.
// It is rebuilt for every output frame and consumed immediately.
//
// PTS, T and R may be NaN when the frame carries no timestamp or the
// stream's frame rate is unknown; expressions referencing them then
// propagate NaN through IEEE arithmetic rather than failing.
type Variables struct {
	N   float64
	PTS float64
	R   float64
	T   float64
	TB  float64
}

// Map returns the snapshot keyed by variable name. Every variable is
// always present so evaluators that reject unknown parameters never see
// a missing one.
func (v Variables) Map() map[string]interface{} {
	return map[string]interface{}{
		VarN:   v.N,
		VarPTS: v.PTS,
		VarR:   v.R,
		VarT:   v.T,
		VarTB:  v.TB,
	}
}

// Package huefx implements a hue/saturation adjustment stage for
// planar chroma-subsampled video.
//
// The filter rotates the chrominance vector of every pixel by a
// configurable angle (the hue) and scales it by a configurable
// magnitude (the saturation), leaving the luma plane untouched. Both
// parameters can be static or driven per output frame by expressions
// over the frame ordinal, presentation timestamp, timebase, and frame
// rate.
//
// # Getting Started
//
// Create a filter, negotiate the stream format, and feed it frames:
//
//	filter := huefx.New()
//	if err := filter.Configure("90:1.5"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := filter.SetFormat(video.YUV420P,
//	    video.Rational{Num: 1, Den: 25}, video.Rational{Num: 25, Den: 1}); err != nil {
//	    log.Fatal(err)
//	}
//
//	for src := range frames {
//	    dst, _ := video.NewFrame(src.Format, src.Width, src.Height)
//	    if err := filter.Apply(dst, src); err != nil {
//	        log.Fatal(err)
//	    }
//	    deliver(dst)
//	}
//
// Hosts that receive frames in horizontal slices call BeginFrame once
// per frame and ApplySlice per strip; the output is identical to a
// whole-frame Apply.
//
// # Reconfiguration
//
// The filter accepts a "reinit" command carrying either named options
// ("h=expr", "H=expr", "s=expr" separated by ':') or the compact legacy
// form "hue[:saturation]" with hue in degrees:
//
//	filter.ProcessCommand("reinit", "h=n*2:s=2")  // expression driven
//	filter.ProcessCommand("reinit", "180")        // static, degrees
//
// A rejected request leaves the previous configuration in place.
//
// The expression grammar is pluggable through the eval.Service
// interface; the frame model and pixel loop live in the video package.
package huefx

// Package msdfgen generates signed distance fields from 2D vector shapes,
// including the multi-channel (MSDF) and multi-channel-plus-true-distance
// (MTSDF) variants used to render vector art and text glyphs at arbitrary
// scale from a single, small texture.
//
// How it works, at a glance:
//
//   - Build a Shape from Point2/Vector2-based EdgeSegments, grouped into
//     closed Contours.
//   - Normalize it (drop degenerate edges, split lone-edge contours) and,
//     for MSDF/MTSDF, color its edges with EdgeColoringSimple so each
//     sharp corner separates two distinct color channels.
//   - Choose a Projection mapping shape space to the pixel grid of a
//     Bitmap you own.
//   - Call GenerateSDF, GeneratePSDF, GenerateMSDF, or GenerateMTSDF.
//   - Optionally run MSDFErrorCorrection to flatten channel-combination
//     artifacts, and DistanceSignCorrection if the shape's winding can't
//     be trusted to indicate inside/outside on its own.
//
// A minimal example:
//
//	shape := msdfgen.NewShape()
//	contour := msdfgen.NewContour()
//	contour.AddEdge(msdfgen.NewLinearEdge(msdfgen.Pt(0, 0), msdfgen.Pt(10, 0)))
//	contour.AddEdge(msdfgen.NewLinearEdge(msdfgen.Pt(10, 0), msdfgen.Pt(10, 10)))
//	contour.AddEdge(msdfgen.NewLinearEdge(msdfgen.Pt(10, 10), msdfgen.Pt(0, 10)))
//	contour.AddEdge(msdfgen.NewLinearEdge(msdfgen.Pt(0, 10), msdfgen.Pt(0, 0)))
//	shape.AddContour(contour)
//	shape.Normalize()
//	msdfgen.EdgeColoringSimple(shape, 3.0, 0)
//
//	bitmap := msdfgen.NewBitmap(32, 32, 3)
//	projection := msdfgen.FitProjection(0, 0, 10, 10, 32, 32, 2)
//	msdfgen.GenerateMSDF(bitmap, shape, projection, 4, msdfgen.DefaultGeneratorConfig())
//	msdfgen.MSDFErrorCorrection(bitmap, shape, projection, 4, msdfgen.DefaultErrorCorrectionConfig())
//
// The resulting bitmap reconstructs to a sharp-cornered shape in a
// fragment shader via median(r, g, b) compared against 0.5.
package msdfgen

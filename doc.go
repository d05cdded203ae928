// Package pathgeom provides path geometry for 2D vector shapes: a
// figure-based path model, a parser and formatter for the path
// mini-language, flattening to polylines, and walking along polylines at
// fixed arc-length intervals.
//
// # Geometry, figures, and segments
//
// A [Geometry] is a list of figures plus a [FillRule]. Each [Figure] has a
// start point, a list of [Segment] values, and flags for whether it is
// closed and filled. Segments are compact: a single segment may hold several
// lines ([PolyLineTo]), quadratic Béziers ([PolyQuadTo]), or cubic Béziers
// ([PolyCubicTo]), as well as a single elliptical arc ([ArcTo]). A segment
// does not store its start point; it begins where the previous segment
// ended.
//
// For processing, segments are expanded into [SimpleSegment] values, which
// are self-contained lines and cubic Béziers with explicit start points.
// Quadratic Béziers are raised to cubics and arcs are approximated by up to
// four cubics each, see [ArcToBezier].
//
// # Text form
//
// [Parse] reads the path mini-language:
//
//	F1 M0,0 L10,0 10,10 Z m20,20 c5,0 10,5 10,10 A5,5 0 0 1 40,40
//
// Commands are case-sensitive, with lower-case commands taking coordinates
// relative to the current point. [Format] and [WriteText] produce the same
// syntax, and parsing their output yields an equal geometry.
//
// # Flattening and marching
//
// [Geometry.Flatten] approximates every figure with a polyline whose maximum
// deviation from the curve is bounded by the tolerance. A [Polyline] caches
// per-edge lengths, normals, and vertex angles, which [March] and
// [MarchCorners] use to walk along it. The walk stops whenever a requested
// distance has been covered, and the callback decides how far to go next.
//
// # Numerics
//
// Comparisons throughout the package use the absolute tolerance [Epsilon],
// see [AreClose] and friends. Division goes through [SafeDivide] where a
// zero denominator is possible, and degenerate vectors normalize to a
// fixed unit vector instead of producing NaNs.
//
// # Logging
//
// The package logs nothing by default. Use [SetLogger] to route debug
// output to a [log/slog.Logger].
package pathgeom

// Package stroke provides stroke expansion for converting stroked polylines
// into filled outlines.
//
// A stroke is emitted as a union of simple polygons: one quad per segment, a
// join polygon at every interior vertex and cap polygons at open ends. Every
// polygon is normalized to the same orientation, so a rasterizer that
// saturates accumulated coverage draws their union without seams or holes.
//
// Supported styles:
//   - Caps: butt, round, square
//   - Joins: miter (with miter limit), round, bevel
package stroke

// Package plot renders sampled motion as terminal graphs and SVG documents.
//
//   - [ASCII]: a single series drawn with asciigraph
//   - [MotionSVG]: position and velocity against time, side by side
//   - [TrajectorySVG]: projectile flight paths in the x/y plane
package plot

// Package motion holds the frame-stepped animation primitives of the page:
// spring smoothing for the pointer marker, eased transitions, staggered
// entrance sequences and the header translucency rule.
//
// Nothing in this package schedules itself. The owner calls Step or Advance
// exactly once per rendered frame.
package motion

// Package dispatch routes a STAR blob to the codec its magic bytes name.
// It replaces dynamic per-case script selection with a static switch over
// format.Case: the set of codecs is closed and known at compile time, so
// there is no module registry to look something up in.
package dispatch

// Package timecorrect derives and applies a linear time correction from two
// anchor pairs. It is the pure arithmetic core of a sync operation: given
// two (source, target) timestamp pairs it computes scale and offset, then
// remaps every cue timestamp through the affine map.
package timecorrect

// Package piercer selects the next border node to settle onto the
// source-piercing side of a cutter.CutterState (spec §4.7). To pierce the
// target side instead, the caller flips the CutterState's view direction,
// pierces, and flips back — Piercer itself only ever reasons about "the
// current source side".
package piercer

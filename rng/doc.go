// Package rng provides the single explicit pseudorandom source a Piercer
// holds for the lifetime of one findBalancedCut call.
//
// A global mutable RNG would make piercing decisions (and therefore which
// cut gets found first) depend on call order across unrelated parts of the
// program. Every consumer here instead takes a *Source value explicitly.
package rng

// Package config resolves the parameters one findBalancedCut run needs
// (algorithm choice, worker count, piercing-round and MBMC bounds, RNG
// seed, logging and metrics settings) by layering defaults under environment overrides with
// github.com/knadh/koanf/v2, the same layered-merge pattern
// Hola-to-network_logistics_problem's pkg/config uses for service config.
//
// A run's .whfc sidecar (spec §6: maxBlockWeight0, maxBlockWeight1,
// upperFlowBound, s, t) is parsed by the hmetis package, not here — this
// package only resolves the run-level knobs that sit above any one input
// file (algorithm choice, worker count, logging/metrics settings, RNG
// seed).
package config

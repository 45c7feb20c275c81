// Package hfc implements the driver (component C8): the outer
// enumerate-cuts-until-balanced-or-flow-bound-exceeded loop that alternates
// augmenting flow with piercing the border, until the residual min cut it
// settles into admits a balanced bipartition or no further piercing
// candidate exists (spec §4.8).
package hfc

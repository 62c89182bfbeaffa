// Package rules implements the compatibility validation engine for tool
// manifests. It checks whether a set of selected services and flags is
// mutually consistent and produces a normalized, conflict-free flag map.
//
// The engine is organized as a pipeline of small checkers sharing a common
// data shape (selected services, a flag map, and a RuleSet keyed by
// service/flag id):
//
//   - CheckServices rejects combinations of service groups declared
//     mutually incompatible and enforces service-level privilege
//     requirements (blocking).
//   - ApplyImplications auto-enables flags implied by enabled flags,
//     iterating to a fixed point so transitive chains resolve regardless
//     of declaration order.
//   - ApplyOverrides removes flags superseded by a stronger flag in a
//     single pass (overrides deliberately do not cascade).
//   - CheckFlags enforces per-flag requires, incompatible_with, depends_on,
//     and requires_parent rules.
//   - CheckGuards evaluates CEL constraint expressions attached to flag
//     restrictions.
//   - CheckMutexGroups enforces at-most-one-of-N selection within named
//     flag groups.
//   - CheckSubOptions reports enabled sub-options whose parent flag is not
//     set.
//
// ValidateAll sequences the above and aggregates blocking errors and
// non-blocking warnings into a single Report. All functions are pure with
// respect to their inputs; the only external state consulted is the
// process elevation query behind the privilege.Elevation interface.
//
// Validation is synchronous and allocation-light. A RuleSet may be shared
// across concurrent ValidateAll calls as long as callers do not mutate it.
package rules

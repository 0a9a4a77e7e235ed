// Package assignment draws gift-exchange assignments.
//
// An assignment is a permutation over all people in which nobody gives to
// themselves and nobody gives to a member of their own family.
//
// # Algorithm
//
// Engine.Assign runs a random greedy search with restarts:
//
//  1. Shuffle the giver order.
//  2. For each giver, collect every person not yet receiving, not the giver,
//     not in the giver's family and not excluded for this giver.
//  3. If nobody is left, the attempt is a dead end: discard it whole and
//     start over with a fresh shuffle. Dead ends are never patched locally.
//  4. Otherwise pick one candidate uniformly at random and commit it.
//
// Attempts are capped (WithMaxAttempts) and optionally time-boxed
// (WithTimeBudget). Running out yields ErrExhaustedRetries, which means the
// search gave up, not that the roster is provably unsolvable.
//
// # Uniformity
//
// Receivers are uniform among the candidates of each step. That is not the
// same as uniform over all valid assignments: later givers have fewer
// candidates, so some assignments are drawn more often than others.
//
// # Pruning
//
// WithPruning drops any candidate whose selection would leave the remaining
// givers and receivers without a perfect matching. For the family rule alone
// that check is exact (a family f fits iff givers_f + receivers_f <= remaining),
// so a pruned search on a feasible roster never dead-ends. Exclusions are not
// part of the check and can still cause restarts.
//
// # Concurrency
//
// An Engine is immutable once built. Each Assign call owns its random stream
// and search state, so concurrent calls are safe.
package assignment

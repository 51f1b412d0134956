// Package sampler drives the repeated sampling loop.
//
// One round launches every command of the profile's show table, merges
// captured output into a snapshot, stamps it from the device's own clock
// and hostname, and writes one compressed file to the output directory.
// Before the first round the profile's clear table runs once to zero the
// drop counters.
//
// Rounds are paced with a rate limiter so interval waits remain responsive
// to context cancellation. A command timeout aborts the loop; a missing
// command merely thins the snapshot.
package sampler

// Package defaults centralizes timeout, interval, and filesystem constants
// used across npusnap. Keeping them in one place makes the operational
// envelope of the sampler reviewable at a glance.
package defaults

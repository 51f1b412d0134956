// Package cli implements the npusnap command line interface: the sample
// loop, the local snapshot index listing, and the OCI push of collected
// archives.
package cli

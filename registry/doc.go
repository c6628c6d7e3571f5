// Package registry keeps a small sqlite-backed log of estimation runs so
// the batch and watch commands can discover what is running or finished
// without re-parsing theta/dzA output files from scratch. The theta/dzA
// streams stay the authoritative estimator output; this is bookkeeping
// only.
package registry

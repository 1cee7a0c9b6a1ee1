// Package batch runs one asset transform over a list of files.
//
// It covers the parts every tool shares: finding PNG inputs, running a
// per-file function sequentially, isolating failures to the file that caused
// them, and reporting progress and a final tally.
//
// # Processing Model
//
// Files are processed one at a time, in the order given. Each file is opened,
// fully processed, and closed before the next begins. There is no
// concurrency, no retry, and no cancellation: an interrupted run may leave a
// partially written output behind.
//
// # Failure Isolation
//
// An error returned by the per-file function, or a panic raised inside it, is
// counted against that file and reported; the batch always continues. Only
// preconditions checked before the batch starts (missing input, unusable
// codec) are fatal, and those are the caller's responsibility.
package batch

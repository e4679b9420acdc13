// Package derive is the pure derivation engine: level, title and
// progress from experience, mood score from check-in responses,
// companion matching from weighted quiz responses, sleep-cycle wake
// candidates and sleep-quality scoring, and journey day numbering.
//
// Every function here is deterministic and side-effect free. Derived
// values are never cached as ground truth anywhere in the application;
// callers recompute them from their inputs on every read.
package derive

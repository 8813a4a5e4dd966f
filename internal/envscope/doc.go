// Package envscope scopes mutations of the process environment.
//
// Three scopes are provided:
//
//   - Patch sets a group of variables and restores their previous values,
//     including absence, when the scope ends.
//   - Clear removes every variable and puts the full previous set back.
//   - Purge watches a name prefix and reverts every matching variable that
//     was added or changed while the scope was open.
//
// Every scope comes in two shapes: a begin call returning a Restore func,
// and a With* form that runs a callback and restores on every exit path,
// including returned errors, panics and runtime.Goexit. Errors returned by
// the callback come back unchanged.
//
// Scopes nest through the call stack. Each scope snapshots only what it is
// about to touch, at the moment it opens, so an inner scope restores to the
// state left by the enclosing one.
//
// The process environment is shared by all goroutines. Scopes are not safe
// for concurrent use on the same Env.
package envscope

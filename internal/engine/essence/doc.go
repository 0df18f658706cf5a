// Package essence implements the farming-plan engine.
//
// All functions are pure over immutable inputs and safe for concurrent use.
// Callers snapshot ownership state into a pool of items before calling in;
// nothing here reads or writes storage.
package essence

/*
Package app assembles the execution substrate: a Router that dispatches
messages to the registered handlers, decorator chaining, a Savepoint
decorator that makes every operation all or nothing, and the TokenApp that
wires the registries together. Execution is strictly single writer, one
transaction at a time, run to completion.
*/
package app

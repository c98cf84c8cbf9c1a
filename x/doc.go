/*
Package x contains extension points shared by all modules, most notably the
Authenticator interface that connects the execution substrate, which knows
who signed a transaction, with the module handlers, which decide what that
caller may do.

Actual modules live in subpackages.
*/
package x

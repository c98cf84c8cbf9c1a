/*
Package ledgertest provides mocked implementations of the core interfaces,
to be used when testing handlers and decorators. All mocks are configured
through their public attributes and fall back to a sane default behaviour
when not configured.
*/
package ledgertest

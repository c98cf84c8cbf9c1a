/*
Package hiretoken implements the hire registry.

A hire token is a receipt minted when a developer is hired for a posting. The
registry is append only and deliberately permissive: minting never fails, the
developer and the posting reference are recorded verbatim without any
cross checks, and reads on unminted ids return zero values instead of errors.
Keep that in mind before reusing this package for anything access controlled.
*/
package hiretoken

/*
Package jobtoken implements the job posting registry.

Every job posting is represented by a token with a unique, sequentially
issued id. The posting details are written once when the token is issued and
never change afterwards. The token owner may transfer it to any other
identity; per owner balances are kept consistent with the ownership records
on every state transition.
*/
package jobtoken

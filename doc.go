/*
Package ledger defines the common interfaces that connect the token
registries with the deterministic execution substrate they run on.

State lives in a KVStore. Operations arrive as messages (Msg) wrapped in a
transaction (Tx) and are processed by a Handler, one at a time, to completion.
Each handler run is atomic: the application layers a cache wrap over the store
and only writes it back when the handler succeeds.

Authentication information travels through the context. Helpers of the form

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

are defined for every value stored there, such as block height and block time.
*/
package ledger

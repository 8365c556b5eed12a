// Package lexorank implements LexoRank keys: strings that sort
// lexicographically and leave room to insert a new key between any two
// existing ones, so a user-defined ordering can be persisted in an indexed
// string column without renumbering the collection.
//
// A LexoRank is a Bucket (0, 1 or 2) and a Rank (a base-36 string over
// 0-9a-z that never ends with '0'), written as "bucket|rank":
//
//	rk, err := lexorank.Parse("0|1")
//	after := rk.Next()                    // "0|2"
//	mid, ok := rk.Between(after)          // "0|11"
//
// All values are immutable and safe for concurrent use. Rebalancing is left
// to the caller: Bucket.Next and LexoRank.InNextBucket are the primitives a
// rebalance process uses to move freshly generated short ranks into a new
// bucket.
package lexorank

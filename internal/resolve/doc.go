// Package resolve validates parsed download lines against the item
// table and produces fully resolved icon requests.
//
// Failures carry a Kind (unknown name, missing tier, out-of-range
// values) so the fetch loop can report and retain the offending line
// without string matching. A tier that conflicts with an identifier's
// embedded tier is not a failure: the embedded tier wins and the
// request is flagged for a warning.
package resolve

// Package order implements the Order aggregate root for the laundry
// fulfillment workflow.
//
// The aggregate owns four concerns that must stay consistent:
//   - the status state machine over the fixed forward step sequence,
//     with cancellation as an absorbing exception (Status, Advance)
//   - the append-only status history serving as the audit trail (StatusEvent)
//   - the per-item quality review sub-workflow, orthogonal to order status
//     (Item, ApproveItem, RequestItemRewash)
//   - the derived invoice total, refreshed by the application layer after
//     every mutation (RefreshTotal)
//
// Orders are created through NewOrder, rehydrated through RestoreOrder, and
// mutated only through validated methods. Every write carries an optimistic
// concurrency version so competing requests against the same order fail fast
// instead of overwriting each other.
package order

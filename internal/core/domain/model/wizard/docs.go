// Package wizard models one delivery-request composition session.
//
// The session walks four steps:
//
//	TypeSelect(1) ──SetDeliveryType──> OriginSelect(2) ──SetOriginStore──> DestinationSelect(3)
//	     ^                                   ^                                   │
//	     │                                   │                          SetDestinationStore
//	     └────────────── SetStep (back) ─────┴──────────── DetailsEntry(4) <──────┘
//
// Every transition is looked up in a table keyed by (current step, action);
// anything not in the table is rejected with TransitionRejectedError, so steps
// can only be skipped backwards. State holds what has been collected so far,
// Flow owns a State together with the store directory fetched for the session.
package wizard

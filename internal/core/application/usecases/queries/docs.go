// Package queries contains read operations over wizard flows and the submission ledger.
// Flow queries read the in-memory flow repository; ledger queries read postgres directly.
package queries

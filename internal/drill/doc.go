// Package drill implements the drill session engine.
//
// A session turns a lesson's word list into a shuffled queue of cards. The
// learner reveals the answer for the current card and marks it correct or
// wrong. Wrong cards go back to the tail of the queue with their miss count
// incremented; correct cards move to the completed ledger and never return.
// The session ends once every card has been marked correct, and BuildReport
// ranks the ledger worst-first.
//
// Queue is not safe for concurrent use. Callers such as a Bubble Tea model
// already serialize input events, so no locking is done here.
package drill

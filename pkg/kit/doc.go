// Package kit provides the session layer over the wire protocol: a
// Client for script processes and a Host for the shell process that
// serves them.
//
// A Client drives a reader/writer pair. Command requests are
// correlated by generated request ids and resolved by the echoed
// requestId on the response; prompt opens are correlated by generated
// prompt ids, and each open returns a Prompt handle whose Events
// channel carries the user's interactions with that prompt. The read
// loop is lenient: records that fail to decode are reported to the
// structured logger and skipped, never fatal.
//
// A Host runs the other side of the same contract: a serve loop that
// dispatches command requests to a Handlers struct, echoes every
// request id verbatim on the answer, and surfaces prompt and system
// traffic through callbacks.
package kit

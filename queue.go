package sequencer

// queuedToken is a token waiting for the execute phase, with the operand and
// section scope it was produced for.
type queuedToken struct {
	token      ExecutionToken
	operand    Operand
	persistent PersistentData
}

// TokenQueue collects the tokens produced during one frame's evaluate phase.
// Nothing in the queue touches a node until Execute is called.
type TokenQueue struct {
	entries []queuedToken
}

// Add queues tok for operand. The token runs on the next Execute call.
func (q *TokenQueue) Add(tok ExecutionToken, operand Operand, persistent PersistentData) {
	q.entries = append(q.entries, queuedToken{
		token:      tok,
		operand:    operand,
		persistent: persistent,
	})
}

// Len returns the number of queued tokens.
func (q *TokenQueue) Len() int {
	return len(q.entries)
}

// Execute runs every queued token in the order it was added, then empties
// the queue. The backing array is kept for the next frame.
func (q *TokenQueue) Execute(player Player) {
	for i := range q.entries {
		e := &q.entries[i]
		e.token.Execute(e.operand, e.persistent, player)
	}
	q.Reset()
}

// Reset drops all queued tokens without running them.
func (q *TokenQueue) Reset() {
	clear(q.entries)
	q.entries = q.entries[:0]
}

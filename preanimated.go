package sequencer

// PreAnimatedToken is a snapshot of a node's state taken before the first
// animated mutation of one kind. Restore writes the snapshot back onto a live
// node.
type PreAnimatedToken interface {
	Restore(n *Node)
}

// PreAnimatedTokenProducer reads the current state of a node into a token.
type PreAnimatedTokenProducer interface {
	CaptureExistingState(n *Node) PreAnimatedToken
}

// ProducerFunc adapts a plain function to PreAnimatedTokenProducer.
type ProducerFunc func(n *Node) PreAnimatedToken

// CaptureExistingState calls f(n).
func (f ProducerFunc) CaptureExistingState(n *Node) PreAnimatedToken {
	return f(n)
}

// EntityKey identifies a capture scope narrower than the whole session,
// typically one section.
type EntityKey struct {
	id uint32
}

var entityKeyCounter uint32

// NewEntityKey mints a new, unique entity scope.
func NewEntityKey() EntityKey {
	entityKeyCounter++
	return EntityKey{id: entityKeyCounter}
}

type preAnimatedKey struct {
	handle Handle
	tag    AnimTypeID
}

// preAnimatedScope holds at most one token per key, in capture order.
type preAnimatedScope struct {
	tokens map[preAnimatedKey]PreAnimatedToken
	order  []preAnimatedKey
}

func (s *preAnimatedScope) has(key preAnimatedKey) bool {
	_, ok := s.tokens[key]
	return ok
}

// capture stores a token for key unless one already exists. Reports whether
// a new token was created.
func (s *preAnimatedScope) capture(key preAnimatedKey, n *Node, producer PreAnimatedTokenProducer) bool {
	if s.has(key) {
		return false
	}
	if s.tokens == nil {
		s.tokens = make(map[preAnimatedKey]PreAnimatedToken)
	}
	s.tokens[key] = producer.CaptureExistingState(n)
	s.order = append(s.order, key)
	return true
}

// restore restores and evicts key. Reports whether a token was present.
func (s *preAnimatedScope) restore(key preAnimatedKey) bool {
	token, ok := s.tokens[key]
	if !ok {
		return false
	}
	delete(s.tokens, key)
	for i, k := range s.order {
		if k == key {
			copy(s.order[i:], s.order[i+1:])
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	restoreToken(key.handle, token)
	return true
}

// restoreHandle restores and evicts every tag captured for h, newest first.
func (s *preAnimatedScope) restoreHandle(h Handle) int {
	count := 0
	for i := len(s.order) - 1; i >= 0; i-- {
		key := s.order[i]
		if key.handle != h {
			continue
		}
		token := s.tokens[key]
		delete(s.tokens, key)
		copy(s.order[i:], s.order[i+1:])
		s.order = s.order[:len(s.order)-1]
		restoreToken(key.handle, token)
		count++
	}
	return count
}

// restoreAll restores every token newest first and empties the scope.
func (s *preAnimatedScope) restoreAll() int {
	count := len(s.order)
	for i := len(s.order) - 1; i >= 0; i-- {
		key := s.order[i]
		restoreToken(key.handle, s.tokens[key])
	}
	s.tokens = nil
	s.order = s.order[:0]
	return count
}

func (s *preAnimatedScope) len() int {
	return len(s.order)
}

// restoreToken applies token to the node behind h. A dead handle is a
// silent no-op.
func restoreToken(h Handle, token PreAnimatedToken) {
	if token == nil {
		return
	}
	n := h.Resolve()
	if n == nil {
		return
	}
	token.Restore(n)
}

// PreAnimatedState caches the state of every node mutated during an
// evaluation session so it can be put back afterwards. Each Session owns one.
//
// Global captures hold the state from before the session first touched a
// node. Entity captures hold the state from before a particular section
// first touched it, and are restored when that section finishes.
//
// None of the methods fail: dead handles are treated as nothing to capture
// and nothing to restore.
type PreAnimatedState struct {
	global        preAnimatedScope
	entities      map[EntityKey]*preAnimatedScope
	entityOrder   []EntityKey
	globalCapture bool

	// counters for debug stats, reset by the session each frame
	captureCount int
	restoreCount int
}

// NewPreAnimatedState creates an empty store with global capture enabled.
func NewPreAnimatedState() *PreAnimatedState {
	return &PreAnimatedState{globalCapture: true}
}

// EnableGlobalCapture turns on session-wide capture.
func (s *PreAnimatedState) EnableGlobalCapture() {
	s.globalCapture = true
}

// DisableGlobalCapture turns off session-wide capture. Existing tokens are
// kept and still restored by RestoreAllAndClear.
func (s *PreAnimatedState) DisableGlobalCapture() {
	s.globalCapture = false
}

// IsGlobalCaptureEnabled reports whether CaptureIfAbsent records tokens.
func (s *PreAnimatedState) IsGlobalCaptureEnabled() bool {
	return s.globalCapture
}

// CaptureIfAbsent records the current state of the node behind h for tag,
// unless a token for (h, tag) already exists. Safe to call before every
// mutation: only the first call captures.
func (s *PreAnimatedState) CaptureIfAbsent(h Handle, tag AnimTypeID, producer PreAnimatedTokenProducer) {
	if !s.globalCapture {
		return
	}
	key := preAnimatedKey{handle: h, tag: tag}
	if s.global.has(key) {
		return
	}
	n := h.Resolve()
	if n == nil {
		return
	}
	if s.global.capture(key, n, producer) {
		s.captureCount++
	}
}

// CaptureForEntity records the current state of the node behind h for tag in
// the scope of entity, unless that scope already holds a token for (h, tag).
func (s *PreAnimatedState) CaptureForEntity(entity EntityKey, h Handle, tag AnimTypeID, producer PreAnimatedTokenProducer) {
	key := preAnimatedKey{handle: h, tag: tag}
	scope := s.entities[entity]
	if scope != nil && scope.has(key) {
		return
	}
	n := h.Resolve()
	if n == nil {
		return
	}
	if scope == nil {
		if s.entities == nil {
			s.entities = make(map[EntityKey]*preAnimatedScope)
		}
		scope = &preAnimatedScope{}
		s.entities[entity] = scope
		s.entityOrder = append(s.entityOrder, entity)
	}
	if scope.capture(key, n, producer) {
		s.captureCount++
	}
}

// Contains reports whether a session-wide token exists for (h, tag).
func (s *PreAnimatedState) Contains(h Handle, tag AnimTypeID) bool {
	return s.global.has(preAnimatedKey{handle: h, tag: tag})
}

// ContainsForEntity reports whether entity's scope holds a token for (h, tag).
func (s *PreAnimatedState) ContainsForEntity(entity EntityKey, h Handle, tag AnimTypeID) bool {
	scope := s.entities[entity]
	return scope != nil && scope.has(preAnimatedKey{handle: h, tag: tag})
}

// Len returns the number of tokens held across all scopes.
func (s *PreAnimatedState) Len() int {
	n := s.global.len()
	for _, scope := range s.entities {
		n += scope.len()
	}
	return n
}

// RestoreAndEvict restores the session-wide token for (h, tag), if any, and
// removes it. If the node is gone the token is simply dropped.
func (s *PreAnimatedState) RestoreAndEvict(h Handle, tag AnimTypeID) {
	if s.global.restore(preAnimatedKey{handle: h, tag: tag}) {
		s.restoreCount++
	}
}

// RestoreEntity restores and drops every token captured in entity's scope.
func (s *PreAnimatedState) RestoreEntity(entity EntityKey) {
	scope := s.entities[entity]
	if scope == nil {
		return
	}
	s.restoreCount += scope.restoreAll()
	s.dropEntity(entity)
}

// RestoreObject restores and drops every token held for h, entity scopes
// first (newest entity first), then the session-wide tokens.
func (s *PreAnimatedState) RestoreObject(h Handle) {
	for i := len(s.entityOrder) - 1; i >= 0; i-- {
		entity := s.entityOrder[i]
		scope := s.entities[entity]
		s.restoreCount += scope.restoreHandle(h)
		if scope.len() == 0 {
			s.dropEntity(entity)
		}
	}
	s.restoreCount += s.global.restoreHandle(h)
}

// RestoreAllAndClear restores every token in every scope and empties the
// store. Entity scopes are unwound newest first, then session-wide tokens,
// so nodes finish in their pre-session state.
func (s *PreAnimatedState) RestoreAllAndClear() {
	for i := len(s.entityOrder) - 1; i >= 0; i-- {
		s.restoreCount += s.entities[s.entityOrder[i]].restoreAll()
	}
	s.entities = nil
	s.entityOrder = s.entityOrder[:0]
	s.restoreCount += s.global.restoreAll()
}

func (s *PreAnimatedState) dropEntity(entity EntityKey) {
	delete(s.entities, entity)
	for i, e := range s.entityOrder {
		if e == entity {
			copy(s.entityOrder[i:], s.entityOrder[i+1:])
			s.entityOrder = s.entityOrder[:len(s.entityOrder)-1]
			return
		}
	}
}

func (s *PreAnimatedState) resetCounters() {
	s.captureCount = 0
	s.restoreCount = 0
}

package querycache

import "go.trai.ch/cram/internal/core/domain"

// Subscribe registers interest in key and returns a channel of entry snapshots plus a cancel func.
//
// The channel holds one element. A subscriber that falls behind only sees the latest state.
// If the key is already cached its current entry is delivered immediately. cancel closes the
// channel and may be called more than once.
func (s *Store) Subscribe(key domain.QueryKey) (<-chan domain.QueryEntry, func()) {
	kid := key.ID()
	ch := make(chan domain.QueryEntry, 1)

	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	if s.subs[kid] == nil {
		s.subs[kid] = make(map[uint64]chan domain.QueryEntry)
	}
	s.subs[kid][id] = ch
	if rec, ok := s.entries[kid]; ok {
		ch <- snapshot(rec)
	}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		set, ok := s.subs[kid]
		if !ok {
			return
		}
		if _, ok := set[id]; !ok {
			return
		}
		delete(set, id)
		if len(set) == 0 {
			delete(s.subs, kid)
		}
		close(ch)
	}
	return ch, cancel
}

// publish delivers entry to every subscriber of the key with id kid. The caller must hold s.mu.
func (s *Store) publish(kid string, entry domain.QueryEntry) {
	for _, ch := range s.subs[kid] {
		// Publishers are serialized by s.mu, so after draining the slot the send cannot block.
		select {
		case <-ch:
		default:
		}
		ch <- entry
	}
}

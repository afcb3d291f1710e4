// Copyright 2025 The respconn Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conn

import "github.com/cespare/xxhash/v2"

// Listener receives the payload bytes of every message published to the
// channel it was registered for. err is non-nil only when the server
// sent an error reply while this connection was in Channel mode; payload
// is nil in that case.
type Listener func(payload []byte, err error)

// channelHash folds a channel or pattern name down to the 32-bit key the
// listener map is indexed by. xxhash's digest is 64 bits; only the low 32
// are kept, which is enough entropy for the handful of channels a single
// connection subscribes to and keeps the map's key type small.
func channelHash(channel []byte) uint32 {
	return uint32(xxhash.Sum64(channel))
}

// listenerMap is the channel-mode routing table: one entry per
// subscribed channel or pattern, keyed by its hash. It is touched only by
// the executor goroutine.
type listenerMap struct {
	byHash map[uint32]Listener
	last   uint32 // hash of the most recently registered listener
	hasAny bool
}

func newListenerMap() *listenerMap {
	return &listenerMap{byHash: make(map[uint32]Listener)}
}

func (m *listenerMap) register(channel string, l Listener) {
	h := channelHash([]byte(channel))
	// On a hash collision the first registered listener keeps the slot.
	if _, taken := m.byHash[h]; !taken {
		m.byHash[h] = l
	}
	m.last = h
	m.hasAny = true
}

func (m *listenerMap) unregister(channel string) {
	delete(m.byHash, channelHash([]byte(channel)))
}

func (m *listenerMap) lookup(channel []byte) (Listener, bool) {
	l, ok := m.byHash[channelHash(channel)]
	return l, ok
}

// mostRecent returns the most recently registered listener, the fallback
// target for an error reply in Channel mode whose originating channel
// can't be determined from the reply shape itself.
func (m *listenerMap) mostRecent() (Listener, bool) {
	if !m.hasAny {
		return nil, false
	}
	l, ok := m.byHash[m.last]
	return l, ok
}

func (m *listenerMap) empty() bool {
	return len(m.byHash) == 0
}

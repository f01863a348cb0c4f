// Package store models the hosted document database the auction client
// lives against: the items catalog, the single current-bid record per item,
// the append-only per-item history, and write-only analytics counters.
// Consumers observe it through realtime subscriptions that deliver a fresh
// snapshot on every change and return an idempotent unsubscribe handle.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"silent-auction/internal/auctionerrors"
	model "silent-auction/internal/models"
)

// Unsubscribe cancels a live subscription. Calling it more than once is safe.
type Unsubscribe func()

// IntegrityReport compares an item's current-bid record with its latest
// history entry. The two are written by separate non-transactional writes,
// so they can diverge under failure between the writes.
type IntegrityReport struct {
	ItemID        string `json:"item_id"`
	CurrentBid    int64  `json:"current_bid"`
	LatestHistory int64  `json:"latest_history"`
	Divergent     bool   `json:"divergent"`
}

// SnapshotStore defines the document-store surface the auction core consumes.
type SnapshotStore interface {
	PutItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	DeleteItem(itemID string) (orphanedHistory int, err error)
	ItemsSnapshot() map[string]model.Item
	BidsSnapshot() map[string]model.BidRecord

	GetCurrentBid(itemID string) (model.BidRecord, error)
	SetCurrentBid(rec model.BidRecord) error
	AppendHistory(itemID string, entry model.HistoryEntry) error
	GetHistory(itemID string) ([]model.HistoryEntry, error)
	CheckIntegrity(itemID string) (IntegrityReport, error)

	SubscribeItems(fn func(map[string]model.Item)) Unsubscribe
	SubscribeBids(fn func(map[string]model.BidRecord)) Unsubscribe
	SubscribeHistory(itemID string, fn func([]model.HistoryEntry)) Unsubscribe

	TrackItemView(itemID string, at time.Time)
	TrackBid(itemID string, amount int64, at time.Time)
	TrackSearch(term string, at time.Time)
}

// MemoryStore is a concurrency-safe in-memory SnapshotStore. It stands in
// for the managed backend in tests and single-process deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	items    map[string]model.Item
	bids     map[string]model.BidRecord     // key: itemID -> current highest bid
	history  map[string][]model.HistoryEntry // key: itemID -> newest first
	views    map[string]*model.ItemAnalytics
	searches map[string]*searchTally

	subMu       sync.Mutex
	nextSubID   int
	itemSubs    map[int]func(map[string]model.Item)
	bidSubs     map[int]func(map[string]model.BidRecord)
	historySubs map[string]map[int]func([]model.HistoryEntry)
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:       make(map[string]model.Item),
		bids:        make(map[string]model.BidRecord),
		history:     make(map[string][]model.HistoryEntry),
		views:       make(map[string]*model.ItemAnalytics),
		searches:    make(map[string]*searchTally),
		itemSubs:    make(map[int]func(map[string]model.Item)),
		bidSubs:     make(map[int]func(map[string]model.BidRecord)),
		historySubs: make(map[string]map[int]func([]model.HistoryEntry)),
	}
}

// PutItem creates or replaces a catalog item and notifies item subscribers.
func (s *MemoryStore) PutItem(item model.Item) error {
	if item.ItemID == "" {
		return fmt.Errorf("put item: %w - empty item ID", auctionerrors.ErrInvalidItem)
	}
	s.mu.Lock()
	s.items[item.ItemID] = item
	s.mu.Unlock()

	s.notifyItems()
	return nil
}

// GetItem returns a single catalog item.
func (s *MemoryStore) GetItem(itemID string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// DeleteItem removes an item and its current-bid record. History entries are
// left in place and their count is returned so callers can flag the orphans.
func (s *MemoryStore) DeleteItem(itemID string) (int, error) {
	s.mu.Lock()
	if _, ok := s.items[itemID]; !ok {
		s.mu.Unlock()
		return 0, fmt.Errorf("delete item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	delete(s.items, itemID)
	delete(s.bids, itemID)
	orphaned := len(s.history[itemID])
	s.mu.Unlock()

	s.notifyItems()
	s.notifyBids()
	return orphaned, nil
}

// ItemsSnapshot returns a copy of the current items catalog.
func (s *MemoryStore) ItemsSnapshot() map[string]model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.items)
}

// BidsSnapshot returns a copy of the current-bid records keyed by item.
func (s *MemoryStore) BidsSnapshot() map[string]model.BidRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBids(s.bids)
}

// GetCurrentBid returns the current highest bid record for an item.
func (s *MemoryStore) GetCurrentBid(itemID string) (model.BidRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.items[itemID]; !ok {
		return model.BidRecord{}, fmt.Errorf("get current bid for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	rec, ok := s.bids[itemID]
	if !ok {
		return model.BidRecord{}, fmt.Errorf("get current bid for item %s: %w", itemID, auctionerrors.ErrNoBids)
	}
	return rec, nil
}

// SetCurrentBid overwrites an item's current-bid record. The write is
// conditional: an amount not strictly above the stored bid is rejected with
// ErrBidSuperseded, which closes the read-then-write lost-update window
// between racing bidders.
func (s *MemoryStore) SetCurrentBid(rec model.BidRecord) error {
	s.mu.Lock()
	if _, ok := s.items[rec.ItemID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("set current bid for item %s: %w", rec.ItemID, auctionerrors.ErrItemNotFound)
	}
	if stored, ok := s.bids[rec.ItemID]; ok && rec.Bid <= stored.Bid {
		s.mu.Unlock()
		return fmt.Errorf("set current bid for item %s: %w - stored bid is %d", rec.ItemID, auctionerrors.ErrBidSuperseded, stored.Bid)
	}
	s.bids[rec.ItemID] = rec
	s.mu.Unlock()

	s.notifyBids()
	return nil
}

// AppendHistory adds one immutable entry to an item's bid history and
// notifies that item's history subscribers with the newest-first slice.
func (s *MemoryStore) AppendHistory(itemID string, entry model.HistoryEntry) error {
	s.mu.Lock()
	if _, ok := s.items[itemID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("append history for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	// Newest first, matching the timestamp-descending read order.
	s.history[itemID] = append([]model.HistoryEntry{entry}, s.history[itemID]...)
	s.mu.Unlock()

	s.notifyHistory(itemID)
	return nil
}

// GetHistory returns an item's bid history, newest first.
func (s *MemoryStore) GetHistory(itemID string) ([]model.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.items[itemID]; !ok {
		// History may outlive its item after an admin delete.
		if len(s.history[itemID]) == 0 {
			return nil, fmt.Errorf("get history for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
		}
	}
	return append([]model.HistoryEntry(nil), s.history[itemID]...), nil
}

// CheckIntegrity reports whether an item's current-bid record and latest
// history entry agree.
func (s *MemoryStore) CheckIntegrity(itemID string) (IntegrityReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.items[itemID]; !ok {
		return IntegrityReport{}, fmt.Errorf("check integrity for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	report := IntegrityReport{ItemID: itemID}
	if rec, ok := s.bids[itemID]; ok {
		report.CurrentBid = rec.Bid
	}
	if entries := s.history[itemID]; len(entries) > 0 {
		report.LatestHistory = entries[0].Bid
	}
	report.Divergent = report.CurrentBid != report.LatestHistory
	return report, nil
}

// SubscribeItems registers a callback for items-catalog snapshots. The
// current snapshot is delivered immediately; later deliveries follow every
// catalog change. Callbacks must not write back into the store.
func (s *MemoryStore) SubscribeItems(fn func(map[string]model.Item)) Unsubscribe {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.itemSubs[id] = fn
	snapshot := s.ItemsSnapshot()
	fn(snapshot)
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.itemSubs, id)
			s.subMu.Unlock()
		})
	}
}

// SubscribeBids registers a callback for current-bid snapshots, delivered
// immediately and on every accepted bid.
func (s *MemoryStore) SubscribeBids(fn func(map[string]model.BidRecord)) Unsubscribe {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.bidSubs[id] = fn
	snapshot := s.BidsSnapshot()
	fn(snapshot)
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.bidSubs, id)
			s.subMu.Unlock()
		})
	}
}

// SubscribeHistory registers a callback for one item's history feed,
// newest entry first.
func (s *MemoryStore) SubscribeHistory(itemID string, fn func([]model.HistoryEntry)) Unsubscribe {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	if s.historySubs[itemID] == nil {
		s.historySubs[itemID] = make(map[int]func([]model.HistoryEntry))
	}
	s.historySubs[itemID][id] = fn

	s.mu.RLock()
	snapshot := append([]model.HistoryEntry(nil), s.history[itemID]...)
	s.mu.RUnlock()
	fn(snapshot)
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.historySubs[itemID], id)
			s.subMu.Unlock()
		})
	}
}

// TrackItemView increments an item's view counter. Analytics are write-only
// from the core's perspective; failures are never surfaced to users.
func (s *MemoryStore) TrackItemView(itemID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.analyticsLocked(itemID)
	a.Views++
	a.LastViewedAt = model.EpochMillis(at)
}

// TrackBid increments an item's bid counter and records the last amount.
func (s *MemoryStore) TrackBid(itemID string, amount int64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.analyticsLocked(itemID)
	a.TotalBids++
	a.LastBid = amount
	a.LastBidAt = model.EpochMillis(at)
}

// searchTally is the per-term search counter plus the time of the most
// recent search, in epoch millis.
type searchTally struct {
	Count  int64
	LastAt int64
}

// TrackSearch increments the counter for a search term and records when it
// was last searched. Terms shorter than two characters are ignored.
func (s *MemoryStore) TrackSearch(term string, at time.Time) {
	term = strings.ToLower(strings.TrimSpace(term))
	if len(term) < 2 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tally, ok := s.searches[term]
	if !ok {
		tally = &searchTally{}
		s.searches[term] = tally
	}
	tally.Count++
	tally.LastAt = model.EpochMillis(at)
}

// Analytics returns the counters recorded for an item. Intended for tests
// and the admin dashboard.
func (s *MemoryStore) Analytics(itemID string) model.ItemAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.views[itemID]; ok {
		return *a
	}
	return model.ItemAnalytics{ItemID: itemID}
}

// SearchCount returns how often a term has been searched. Intended for tests.
func (s *MemoryStore) SearchCount(term string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if tally, ok := s.searches[strings.ToLower(strings.TrimSpace(term))]; ok {
		return tally.Count
	}
	return 0
}

// LastSearchedAt returns when the term was last searched, in epoch millis,
// or zero for a term never seen. Intended for tests.
func (s *MemoryStore) LastSearchedAt(term string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if tally, ok := s.searches[strings.ToLower(strings.TrimSpace(term))]; ok {
		return tally.LastAt
	}
	return 0
}

func (s *MemoryStore) analyticsLocked(itemID string) *model.ItemAnalytics {
	a, ok := s.views[itemID]
	if !ok {
		a = &model.ItemAnalytics{ItemID: itemID}
		s.views[itemID] = a
	}
	return a
}

// notifyItems delivers the items snapshot to all item subscribers in
// registration order. subMu serializes deliveries so each subscription sees
// snapshots in write order.
func (s *MemoryStore) notifyItems() {
	snapshot := s.ItemsSnapshot()
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, fn := range s.itemSubs {
		fn(copyItems(snapshot))
	}
}

func (s *MemoryStore) notifyBids() {
	snapshot := s.BidsSnapshot()
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, fn := range s.bidSubs {
		fn(copyBids(snapshot))
	}
}

func (s *MemoryStore) notifyHistory(itemID string) {
	s.mu.RLock()
	snapshot := append([]model.HistoryEntry(nil), s.history[itemID]...)
	s.mu.RUnlock()

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, fn := range s.historySubs[itemID] {
		fn(append([]model.HistoryEntry(nil), snapshot...))
	}
}

func copyItems(src map[string]model.Item) map[string]model.Item {
	dst := make(map[string]model.Item, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyBids(src map[string]model.BidRecord) map[string]model.BidRecord {
	dst := make(map[string]model.BidRecord, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

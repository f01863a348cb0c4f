package viewmodel

import (
	"fmt"
	"sync"
	"time"

	model "silent-auction/internal/models"
	"silent-auction/internal/rules"
	"silent-auction/internal/store"
)

// historyTimeLayout renders entry timestamps the way the detail page shows
// them, e.g. "Jan 2, 2006, 3:04:05 PM".
const historyTimeLayout = "Jan 2, 2006, 3:04:05 PM"

// HistoryRow is one presentable bid-history entry.
type HistoryRow struct {
	model.HistoryEntry
	TimeLabel string `json:"time_label"`
}

// DetailSnapshot is the derived state of the item detail view.
type DetailSnapshot struct {
	Item           model.Item       `json:"item"`
	CurrentBid     *model.BidRecord `json:"current_bid,omitempty"`
	MinimumNextBid int64            `json:"minimum_next_bid"`
	History        []HistoryRow     `json:"history"`
	Latest         *HistoryRow      `json:"latest,omitempty"`
}

// DetailViewModel follows one item and its append-only history feed.
type DetailViewModel struct {
	st     store.SnapshotStore
	itemID string

	mu      sync.RWMutex
	history []model.HistoryEntry

	unsub     store.Unsubscribe
	closeOnce sync.Once
}

// NewDetail resolves the item and subscribes to its history feed, newest
// entries first.
func NewDetail(st store.SnapshotStore, itemID string) (*DetailViewModel, error) {
	if _, err := st.GetItem(itemID); err != nil {
		return nil, fmt.Errorf("detail view: %w", err)
	}
	vm := &DetailViewModel{st: st, itemID: itemID}
	vm.unsub = st.SubscribeHistory(itemID, vm.onHistory)
	return vm, nil
}

func (vm *DetailViewModel) onHistory(entries []model.HistoryEntry) {
	vm.mu.Lock()
	vm.history = entries
	vm.mu.Unlock()
}

// Snapshot re-reads the item and current bid and merges them with the live
// history feed.
func (vm *DetailViewModel) Snapshot() (DetailSnapshot, error) {
	item, err := vm.st.GetItem(vm.itemID)
	if err != nil {
		return DetailSnapshot{}, fmt.Errorf("detail snapshot: %w", err)
	}

	var current *model.BidRecord
	if rec, recErr := vm.st.GetCurrentBid(vm.itemID); recErr == nil {
		current = &rec
	}

	vm.mu.RLock()
	entries := append([]model.HistoryEntry(nil), vm.history...)
	vm.mu.RUnlock()

	rows := make([]HistoryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, HistoryRow{
			HistoryEntry: e,
			TimeLabel:    time.UnixMilli(e.Timestamp).Format(historyTimeLayout),
		})
	}

	snap := DetailSnapshot{
		Item:           item,
		CurrentBid:     current,
		MinimumNextBid: rules.MinimumNextBid(item, current),
		History:        rows,
	}
	if len(rows) > 0 {
		snap.Latest = &rows[0]
	}
	return snap, nil
}

// Close releases the history subscription. Idempotent.
func (vm *DetailViewModel) Close() {
	vm.closeOnce.Do(func() {
		vm.unsub()
	})
}

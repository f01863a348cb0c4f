// Package viewmodel derives the presentation state of the bidding room and
// the item detail view from live snapshot-store subscriptions. Derivation is
// a pure function of the latest snapshots plus the filter and sort state, so
// re-rendering the same inputs always yields the same rows.
package viewmodel

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	model "silent-auction/internal/models"
	"silent-auction/internal/rules"
	"silent-auction/internal/store"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BidStatusFilter narrows the room to items with or without bids.
type BidStatusFilter string

const (
	StatusAll         BidStatusFilter = "all"
	StatusWithBids    BidStatusFilter = "with_bids"
	StatusWithoutBids BidStatusFilter = "without_bids"
)

// SortOrder selects the room ordering.
type SortOrder string

const (
	SortByItemNo     SortOrder = "item_no"     // numeric ascending (default)
	SortByHighestBid SortOrder = "highest_bid" // descending
	SortByName       SortOrder = "name"        // locale-aware ascending
)

// Query is the filter and sort state applied to the room snapshot. Nil price
// bounds are unbounded; set bounds are inclusive.
type Query struct {
	Search   string
	Status   BidStatusFilter
	Sort     SortOrder
	MinPrice *int64
	MaxPrice *int64
}

// Row is one presentable item in the room listing.
type Row struct {
	Item           model.Item       `json:"item"`
	CurrentBid     *model.BidRecord `json:"current_bid,omitempty"`
	MinimumNextBid int64            `json:"minimum_next_bid"`
}

// RoomSnapshot is the derived, filtered, sorted room state.
type RoomSnapshot struct {
	Rows        []Row `json:"rows"`
	ResultCount int   `json:"result_count"`
	TotalCount  int   `json:"total_count"`
	Loading     bool  `json:"loading"`
}

// RoomViewModel holds the live items and bids subscriptions and recomputes
// the room listing on demand. Close releases both subscriptions.
type RoomViewModel struct {
	mu          sync.RWMutex
	items       map[string]model.Item
	bids        map[string]model.BidRecord
	itemsLoaded bool
	bidsLoaded  bool

	unsubItems store.Unsubscribe
	unsubBids  store.Unsubscribe
	closeOnce  sync.Once
}

// NewRoom subscribes to the items and bids feeds. The view model reports
// Loading until the initial snapshot of each feed has arrived.
func NewRoom(st store.SnapshotStore) *RoomViewModel {
	vm := &RoomViewModel{
		items: make(map[string]model.Item),
		bids:  make(map[string]model.BidRecord),
	}
	vm.unsubItems = st.SubscribeItems(vm.onItems)
	vm.unsubBids = st.SubscribeBids(vm.onBids)
	return vm
}

func (vm *RoomViewModel) onItems(snapshot map[string]model.Item) {
	vm.mu.Lock()
	vm.items = snapshot
	vm.itemsLoaded = true
	vm.mu.Unlock()
}

func (vm *RoomViewModel) onBids(snapshot map[string]model.BidRecord) {
	vm.mu.Lock()
	vm.bids = snapshot
	vm.bidsLoaded = true
	vm.mu.Unlock()
}

// Loading reports whether either initial snapshot is still outstanding.
func (vm *RoomViewModel) Loading() bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return !(vm.itemsLoaded && vm.bidsLoaded)
}

// Snapshot derives the filtered and sorted room listing for the query.
func (vm *RoomViewModel) Snapshot(q Query) RoomSnapshot {
	vm.mu.RLock()
	items := vm.items
	bids := vm.bids
	loading := !(vm.itemsLoaded && vm.bidsLoaded)
	vm.mu.RUnlock()

	rows := Derive(items, bids, q)
	return RoomSnapshot{
		Rows:        rows,
		ResultCount: len(rows),
		TotalCount:  len(items),
		Loading:     loading,
	}
}

// Close releases the feed subscriptions. Idempotent; required on teardown so
// listeners do not leak.
func (vm *RoomViewModel) Close() {
	vm.closeOnce.Do(func() {
		vm.unsubItems()
		vm.unsubBids()
	})
}

// Derive computes the filtered, sorted row list from an items+bids snapshot
// pair and the query. Pure: no hidden state, stable order on repeat calls.
func Derive(items map[string]model.Item, bids map[string]model.BidRecord, q Query) []Row {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := q.Status
	if status == "" {
		status = StatusAll
	}

	// Walk items in key order so rows with tied sort keys keep the same
	// relative order on every call; the stable sorts below preserve it.
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]Row, 0, len(items))
	for _, key := range keys {
		item := items[key]
		if search != "" && !matchesSearch(item, search) {
			continue
		}

		var current *model.BidRecord
		if rec, ok := bids[key]; ok && rec.Bid > 0 {
			r := rec
			current = &r
		}

		if status == StatusWithBids && current == nil {
			continue
		}
		if status == StatusWithoutBids && current != nil {
			continue
		}

		price := priceBasis(item, current)
		if q.MinPrice != nil && price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && price > *q.MaxPrice {
			continue
		}

		rows = append(rows, Row{
			Item:           item,
			CurrentBid:     current,
			MinimumNextBid: rules.MinimumNextBid(item, current),
		})
	}

	sortRows(rows, q.Sort)
	return rows
}

func matchesSearch(item model.Item, search string) bool {
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strconv.Itoa(item.ItemNo), search) ||
		strings.Contains(strings.ToLower(item.Description), search) ||
		strings.Contains(strings.ToLower(item.Sponsor), search)
}

// priceBasis is the amount the price-range filter and high-bid sort act on:
// the current bid when one exists, else the starting bid, else zero.
func priceBasis(item model.Item, current *model.BidRecord) int64 {
	if current != nil {
		return current.Bid
	}
	if item.StartingBid > 0 {
		return item.StartingBid
	}
	return 0
}

func sortRows(rows []Row, order SortOrder) {
	switch order {
	case SortByHighestBid:
		sort.SliceStable(rows, func(i, j int) bool {
			return priceBasis(rows[i].Item, rows[i].CurrentBid) > priceBasis(rows[j].Item, rows[j].CurrentBid)
		})
	case SortByName:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(rows, func(i, j int) bool {
			return c.CompareString(rows[i].Item.Name, rows[j].Item.Name) < 0
		})
	default: // SortByItemNo
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Item.ItemNo < rows[j].Item.ItemNo
		})
	}
}

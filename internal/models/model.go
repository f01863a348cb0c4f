package models

import "time"

// Item represents a catalog entry in the silent auction. Items are created
// and edited by admins and are read-only from the bidder's perspective.
type Item struct {
	ItemID       string `json:"item_id"`
	ItemNo       int    `json:"item_no"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Sponsor      string `json:"sponsor,omitempty"`
	Value        int64  `json:"value,omitempty"`
	StartingBid  int64  `json:"starting_bid"`
	BidIncrement int64  `json:"bid_increment"`
}

// DefaultBidIncrement is applied when an item carries no increment of its own.
const DefaultBidIncrement int64 = 500

// Increment returns the item's bid increment, falling back to the default.
func (i Item) Increment() int64 {
	if i.BidIncrement > 0 {
		return i.BidIncrement
	}
	return DefaultBidIncrement
}

// BidRecord is the single current-highest-bid row for an item. It is
// overwritten in place on every accepted bid; it is not a log.
type BidRecord struct {
	ItemID    string `json:"item_id"`
	Bid       int64  `json:"bid"`
	Bidder    string `json:"bidder"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Timestamp int64  `json:"timestamp"` // epoch millis
}

// HistoryEntry is one immutable row per accepted bid, kept per item in an
// append-only collection ordered by timestamp descending. The newest entry
// for an item should mirror its BidRecord.
type HistoryEntry struct {
	Bid       int64  `json:"bid"`
	Bidder    string `json:"bidder"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Timestamp int64  `json:"timestamp"` // epoch millis
}

// Identity is the registered bidder record persisted on the device. It is
// captured once at registration and destroyed on logout.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ItemAnalytics collects write-only activity counters per item.
type ItemAnalytics struct {
	ItemID       string `json:"item_id"`
	Views        int64  `json:"views"`
	TotalBids    int64  `json:"total_bids"`
	LastBid      int64  `json:"last_bid_amount,omitempty"`
	LastViewedAt int64  `json:"last_viewed,omitempty"` // epoch millis
	LastBidAt    int64  `json:"last_bid_time,omitempty"`
}

// EpochMillis converts a time to the epoch-millisecond representation used
// across bid and history records.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

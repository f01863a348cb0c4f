// Package rules holds the pure bid-acceptance logic: the minimum-next-bid
// floor, proposed-bid validation, and the suggested prefill amount. Nothing
// here touches the snapshot store; callers evaluate against the snapshot
// they already hold and issue writes only after explicit confirmation.
package rules

import (
	"fmt"
	"time"

	"silent-auction/internal/auctionerrors"
	model "silent-auction/internal/models"
	"silent-auction/utils"
)

// Evaluation is the accepted outcome of a bid check, carrying the floor
// breakdown used for display and logging.
type Evaluation struct {
	Amount     int64 `json:"amount"`
	MinAllowed int64 `json:"min_allowed"`
	CurrentBid int64 `json:"current_bid"`
	Increment  int64 `json:"increment"`
}

// MinimumNextBid computes the lowest acceptable bid for an item.
//
// With no current bid the amount must strictly exceed the starting bid, so
// the floor is starting_bid + 1. Once a bid exists the floor is the current
// bid plus the item's increment, never below the no-bid floor.
func MinimumNextBid(item model.Item, current *model.BidRecord) int64 {
	floor := item.StartingBid + 1
	if current != nil && current.Bid > 0 {
		if next := current.Bid + item.Increment(); next > floor {
			floor = next
		}
	}
	return floor
}

// Suggest returns the prefill amount for the bid input. It is exactly the
// minimum next bid, so a suggested amount always evaluates to accept.
func Suggest(item model.Item, current *model.BidRecord) int64 {
	return MinimumNextBid(item, current)
}

// Evaluate checks a proposed amount against the floor for the item. It
// returns the accepted evaluation, or an error wrapping ErrInvalidAmount or
// ErrBelowMinimum with the computed minimum and its breakdown.
func Evaluate(item model.Item, current *model.BidRecord, amount int64) (Evaluation, error) {
	if amount <= 0 {
		return Evaluation{}, fmt.Errorf("%w: amount must be a positive whole number", auctionerrors.ErrInvalidAmount)
	}

	var currentBid int64
	if current != nil {
		currentBid = current.Bid
	}
	eval := Evaluation{
		Amount:     amount,
		MinAllowed: MinimumNextBid(item, current),
		CurrentBid: currentBid,
		Increment:  item.Increment(),
	}

	if amount < eval.MinAllowed {
		return Evaluation{}, fmt.Errorf("%w: minimum next bid is %s (current %s + increment %s)",
			auctionerrors.ErrBelowMinimum,
			utils.FormatTHB(eval.MinAllowed),
			utils.FormatTHB(eval.CurrentBid),
			utils.FormatTHB(eval.Increment))
	}

	return eval, nil
}

// ProposedWrites builds the paired current-bid record and history entry for
// an accepted amount. Both carry the same bidder and timestamp; the caller
// issues the two writes together on confirmation.
func ProposedWrites(item model.Item, bidder model.Identity, amount int64, now time.Time) (model.BidRecord, model.HistoryEntry) {
	ts := model.EpochMillis(now)
	rec := model.BidRecord{
		ItemID:    item.ItemID,
		Bid:       amount,
		Bidder:    bidder.Name,
		Email:     bidder.Email,
		Phone:     bidder.Phone,
		Timestamp: ts,
	}
	entry := model.HistoryEntry{
		Bid:       amount,
		Bidder:    bidder.Name,
		Email:     bidder.Email,
		Phone:     bidder.Phone,
		Timestamp: ts,
	}
	return rec, entry
}

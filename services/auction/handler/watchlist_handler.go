package handler

import (
	"fmt"
	"net/http"

	"silent-auction/internal/auctionerrors"
	ident "silent-auction/internal/identity"
	model "silent-auction/internal/models"
	"silent-auction/internal/store"
	"silent-auction/internal/toast"
	"silent-auction/internal/watchlist"
	"silent-auction/services/auction/helpers"
	"silent-auction/utils"

	"github.com/gin-gonic/gin"
)

// WatchlistHandler serves the per-device watchlist joined with live item and
// bid state.
type WatchlistHandler struct {
	watch    *watchlist.Set
	st       store.SnapshotStore
	identity *ident.Cache
	notices  *toast.Queue
}

func NewWatchlistHandler(watch *watchlist.Set, st store.SnapshotStore, identity *ident.Cache, notices *toast.Queue) *WatchlistHandler {
	return &WatchlistHandler{watch: watch, st: st, identity: identity, notices: notices}
}

// WatchlistEntry is one watched item with its live bid state. Items deleted
// by an admin remain listed by id with no item body.
type WatchlistEntry struct {
	ItemID     string           `json:"item_id"`
	Item       *model.Item      `json:"item,omitempty"`
	CurrentBid *model.BidRecord `json:"current_bid,omitempty"`
}

// ListWatchlistHandler handles GET /watchlist
func (h *WatchlistHandler) ListWatchlistHandler(c *gin.Context) {
	if _, err := h.identity.Current(); err != nil {
		helpers.RespondError(c, "ListWatchlistHandler", err)
		return
	}

	items := h.st.ItemsSnapshot()
	bids := h.st.BidsSnapshot()

	ids := h.watch.List()
	entries := make([]WatchlistEntry, 0, len(ids))
	for _, id := range ids {
		entry := WatchlistEntry{ItemID: id}
		if item, ok := items[id]; ok {
			i := item
			entry.Item = &i
		}
		if rec, ok := bids[id]; ok && rec.Bid > 0 {
			r := rec
			entry.CurrentBid = &r
		}
		entries = append(entries, entry)
	}

	utils.JSONResponse(c, http.StatusOK, entries, "watchlist retrieved successfully")
	helpers.LogSuccess("ListWatchlistHandler", "watchlist retrieved successfully", map[string]any{
		"count": len(entries),
	})
}

// RemoveWatchlistHandler handles DELETE /watchlist/:item_id
//
// Removal is destructive, so the request must carry confirm=true.
func (h *WatchlistHandler) RemoveWatchlistHandler(c *gin.Context) {
	if _, err := h.identity.Current(); err != nil {
		helpers.RespondError(c, "RemoveWatchlistHandler", err)
		return
	}

	itemID := c.Param("item_id")
	if c.Query("confirm") != "true" {
		err := fmt.Errorf("remove watchlist item %s: %w", itemID, auctionerrors.ErrConfirmRequired)
		helpers.RespondError(c, "RemoveWatchlistHandler", err)
		return
	}

	if err := h.watch.Remove(itemID); err != nil {
		helpers.RespondError(c, "RemoveWatchlistHandler", err)
		return
	}

	h.notices.Push("Removed from watchlist", toast.KindInfo, 0)
	utils.JSONResponse(c, http.StatusOK, nil, "watchlist item removed")
	helpers.LogSuccess("RemoveWatchlistHandler", "watchlist item removed", map[string]any{
		"item_id": itemID,
	})
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	ident "silent-auction/internal/identity"
	"silent-auction/internal/store"
	"silent-auction/internal/viewmodel"
	"silent-auction/services/auction/helpers"
	"silent-auction/utils"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves the bidding-room listing and the per-item detail view
// off the live room view model.
type RoomHandler struct {
	room     *viewmodel.RoomViewModel
	st       store.SnapshotStore
	identity *ident.Cache
}

func NewRoomHandler(room *viewmodel.RoomViewModel, st store.SnapshotStore, identity *ident.Cache) *RoomHandler {
	return &RoomHandler{room: room, st: st, identity: identity}
}

// ListItemsHandler handles GET /items
//
// Query params: search, status (all|with_bids|without_bids),
// sort (item_no|highest_bid|name), min, max.
func (h *RoomHandler) ListItemsHandler(c *gin.Context) {
	if _, err := h.identity.Current(); err != nil {
		helpers.RespondError(c, "ListItemsHandler", err)
		return
	}

	query := viewmodel.Query{
		Search: c.Query("search"),
		Status: viewmodel.BidStatusFilter(c.DefaultQuery("status", string(viewmodel.StatusAll))),
		Sort:   viewmodel.SortOrder(c.DefaultQuery("sort", string(viewmodel.SortByItemNo))),
	}
	if raw := c.Query("min"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			query.MinPrice = &v
		}
	}
	if raw := c.Query("max"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			query.MaxPrice = &v
		}
	}

	if query.Search != "" {
		h.st.TrackSearch(query.Search, time.Now())
	}

	snapshot := h.room.Snapshot(query)
	if snapshot.Loading {
		utils.JSONResponse(c, http.StatusOK, snapshot, "auction items loading")
		return
	}

	utils.JSONResponse(c, http.StatusOK, snapshot, "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{
		"result_count": snapshot.ResultCount,
		"total_count":  snapshot.TotalCount,
	})
}

// ItemDetailHandler handles GET /items/:item_id
//
// Returns the item with its full bid history, newest entry first, and
// tracks the view.
func (h *RoomHandler) ItemDetailHandler(c *gin.Context) {
	if _, err := h.identity.Current(); err != nil {
		helpers.RespondError(c, "ItemDetailHandler", err)
		return
	}

	itemID := c.Param("item_id")
	detail, err := viewmodel.NewDetail(h.st, itemID)
	if err != nil {
		helpers.RespondError(c, "ItemDetailHandler", err)
		return
	}
	defer detail.Close()

	snapshot, err := detail.Snapshot()
	if err != nil {
		helpers.RespondError(c, "ItemDetailHandler", err)
		return
	}

	h.st.TrackItemView(itemID, time.Now())

	utils.JSONResponse(c, http.StatusOK, snapshot, "item detail retrieved successfully")
	helpers.LogSuccess("ItemDetailHandler", "item detail retrieved successfully", map[string]any{
		"item_id":       itemID,
		"history_count": len(snapshot.History),
	})
}

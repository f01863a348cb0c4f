package handler

import (
	"io"

	model "silent-auction/internal/models"
	"silent-auction/internal/store"

	"github.com/gin-gonic/gin"
)

// StreamHandler pushes item and bid snapshot deltas to connected clients
// over server-sent events. This is the outward face of the realtime feed.
type StreamHandler struct {
	st store.SnapshotStore
}

func NewStreamHandler(st store.SnapshotStore) *StreamHandler {
	return &StreamHandler{st: st}
}

type streamEvent struct {
	name string
	data any
}

// LiveHandler handles GET /stream
//
// The initial snapshots are delivered first, then one event per change.
// Both subscriptions are released when the client disconnects.
func (h *StreamHandler) LiveHandler(c *gin.Context) {
	events := make(chan streamEvent, 16)

	push := func(name string, data any) {
		// Drop deltas for a client that cannot keep up; each event carries
		// the full snapshot, so the next one catches it up.
		select {
		case events <- streamEvent{name: name, data: data}:
		default:
		}
	}

	unsubItems := h.st.SubscribeItems(func(snap map[string]model.Item) { push("items", snap) })
	unsubBids := h.st.SubscribeBids(func(snap map[string]model.BidRecord) { push("bids", snap) })
	defer unsubItems()
	defer unsubBids()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, ev.data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

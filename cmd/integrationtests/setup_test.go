package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"silent-auction/internal/admin"
	"silent-auction/internal/bidding"
	ident "silent-auction/internal/identity"
	"silent-auction/internal/localstore"
	model "silent-auction/internal/models"
	"silent-auction/internal/server"
	"silent-auction/internal/store"
	"silent-auction/internal/toast"
	"silent-auction/internal/viewmodel"
	"silent-auction/internal/watchlist"
	handler "silent-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// TestApp bundles a fully wired router with the state a test may want to
// inspect directly.
type TestApp struct {
	Router    *gin.Engine
	Store     *store.MemoryStore
	Watchlist *watchlist.Set
	Identity  *ident.Cache
}

// SetupTestApp wires the full application over an in-memory snapshot store
// and an in-memory local store, seeded with the given items.
func SetupTestApp(t *testing.T, items ...model.Item) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local, err := localstore.Open("file::memory:")
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	t.Cleanup(func() { local.Close() })

	identityCache := ident.NewCache(local)
	watch, err := watchlist.Load(local)
	if err != nil {
		t.Fatalf("failed to load watchlist: %v", err)
	}

	st := store.NewMemoryStore()
	for _, item := range items {
		if err := st.PutItem(item); err != nil {
			t.Fatalf("failed to seed item %s: %v", item.ItemID, err)
		}
	}

	notices := toast.NewQueue()
	room := viewmodel.NewRoom(st)
	t.Cleanup(room.Close)

	bidFlow := bidding.NewBiddingService(st, identityCache, watch, notices)
	adminService := admin.NewService(st, model.DefaultBidIncrement)

	router := server.SetupRouter(server.Handlers{
		Session:       handler.NewSessionHandler(identityCache, watch, notices),
		Room:          handler.NewRoomHandler(room, st, identityCache),
		Bids:          handler.NewBidHandler(bidFlow),
		Watchlist:     handler.NewWatchlistHandler(watch, st, identityCache, notices),
		Notifications: handler.NewNotificationsHandler(notices),
		Admin:         handler.NewAdminHandler(adminService),
		Stream:        handler.NewStreamHandler(st),
	})

	return &TestApp{
		Router:    router,
		Store:     st,
		Watchlist: watch,
		Identity:  identityCache,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the app's router and
// parses the JSON envelope.
func (app *TestApp) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	app.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

package main

import (
	"fmt"
	"os"

	"silent-auction/internal/admin"
	"silent-auction/internal/bidding"
	"silent-auction/internal/config"
	ident "silent-auction/internal/identity"
	"silent-auction/internal/localstore"
	model "silent-auction/internal/models"
	"silent-auction/internal/server"
	"silent-auction/internal/store"
	"silent-auction/internal/toast"
	"silent-auction/internal/viewmodel"
	"silent-auction/internal/watchlist"
	handler "silent-auction/services/auction/handler"
	"silent-auction/utils"
)

func main() {

	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	local, err := localstore.Open(cfg.LocalDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local store: %v\n", err)
		os.Exit(1)
	}
	defer local.Close()

	watch, err := watchlist.Load(local)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load watchlist: %v\n", err)
		os.Exit(1)
	}

	st := store.NewMemoryStore()
	prepopulateItems(st)

	identityCache := ident.NewCache(local)
	notices := toast.NewQueue()
	room := viewmodel.NewRoom(st)
	defer room.Close()

	biddingSvc := bidding.NewBiddingService(st, identityCache, watch, notices)
	adminSvc := admin.NewService(st, cfg.DefaultIncrement)

	router := server.SetupRouter(server.Handlers{
		Session:       handler.NewSessionHandler(identityCache, watch, notices),
		Room:          handler.NewRoomHandler(room, st, identityCache),
		Bids:          handler.NewBidHandler(biddingSvc),
		Watchlist:     handler.NewWatchlistHandler(watch, st, identityCache, notices),
		Notifications: handler.NewNotificationsHandler(notices),
		Admin:         handler.NewAdminHandler(adminSvc),
		Stream:        handler.NewStreamHandler(st),
	})

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateItems adds sample items to the in-memory store
func prepopulateItems(st *store.MemoryStore) {
	items := []model.Item{
		{ItemID: "item1", ItemNo: 1, Name: "Dinner for Two", Description: "Chef's tasting menu at a riverside restaurant", Sponsor: "River House", Value: 4000, StartingBid: 1000, BidIncrement: 500},
		{ItemID: "item2", ItemNo: 2, Name: "Weekend Villa Stay", Description: "Two nights in a hillside villa", Value: 12000, StartingBid: 3000, BidIncrement: 500},
		{ItemID: "item3", ItemNo: 3, Name: "Signed Football Shirt", Description: "Match-worn and signed by the squad", StartingBid: 1500, BidIncrement: 500},
	}

	for _, item := range items {
		if err := st.PutItem(item); err != nil {
			utils.Warn("failed to seed item", map[string]any{"item_id": item.ItemID, "error": err.Error()})
		}
	}
}

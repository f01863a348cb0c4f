// Package identity caches the registered bidder on the device. The record is
// captured once at registration, gates access to the bidding surfaces, and
// is destroyed only by explicit logout.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"silent-auction/internal/auctionerrors"
	"silent-auction/internal/localstore"
	model "silent-auction/internal/models"
)

const storageKey = "userInfo"

// Cache persists the current bidder identity through the local store.
type Cache struct {
	local *localstore.Store
}

// NewCache creates an identity cache over the given local store.
func NewCache(local *localstore.Store) *Cache {
	return &Cache{local: local}
}

// Register validates and persists a bidder identity. Name and email are
// required; a phone number, when present, must carry at least nine digits.
func (c *Cache) Register(id model.Identity) (model.Identity, error) {
	id.Name = strings.TrimSpace(id.Name)
	id.Email = strings.TrimSpace(id.Email)
	id.Phone = strings.TrimSpace(id.Phone)

	if id.Name == "" || id.Email == "" {
		return model.Identity{}, fmt.Errorf("register: %w - name and email are required", auctionerrors.ErrInvalidIdentity)
	}
	if id.Phone != "" && digitCount(id.Phone) < 9 {
		return model.Identity{}, fmt.Errorf("register: %w - phone number looks too short", auctionerrors.ErrInvalidIdentity)
	}

	if err := c.local.Set(storageKey, id); err != nil {
		return model.Identity{}, fmt.Errorf("register: persist identity: %w", err)
	}
	return id, nil
}

// Current returns the persisted identity, or ErrIdentityMissing when no
// valid registration exists on this device.
func (c *Cache) Current() (model.Identity, error) {
	var id model.Identity
	err := c.local.Get(storageKey, &id)
	if errors.Is(err, localstore.ErrNotFound) {
		return model.Identity{}, fmt.Errorf("current identity: %w", auctionerrors.ErrIdentityMissing)
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("current identity: %w", err)
	}
	if id.Name == "" || id.Email == "" {
		return model.Identity{}, fmt.Errorf("current identity: %w - stored record incomplete", auctionerrors.ErrIdentityMissing)
	}
	return id, nil
}

// Clear removes the persisted identity. Part of logout.
func (c *Cache) Clear() error {
	return c.local.Delete(storageKey)
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

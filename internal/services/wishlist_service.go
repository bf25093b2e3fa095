package services

import (
	"context"
	"encoding/json"
	"strings"

	"estateFront/internal/models"
	"estateFront/internal/repositories"
	"estateFront/utils"
)

// WishlistService keeps a small unique-by-id collection per visitor,
// most-recent-first, and persists the whole snapshot after every mutation.
type WishlistService struct {
	Store repositories.WishlistStore
}

// Items loads the collection. Corrupt snapshots read as empty, and entries
// without an id are dropped on the way in.
func (s *WishlistService) Items(ctx context.Context, visitorID string) []models.WishlistItem {
	raw, err := s.Store.Get(ctx, visitorID)
	if err != nil {
		utils.Logger.WithError(err).Warn("wishlist load failed, treating as empty")
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var items []models.WishlistItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := items[:0]
	for _, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s *WishlistService) Has(ctx context.Context, visitorID, id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	for _, item := range s.Items(ctx, visitorID) {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Add normalizes and prepends the item. Items without a non-empty id are
// rejected silently; an existing id makes this a no-op.
func (s *WishlistService) Add(ctx context.Context, visitorID string, item models.WishlistItem) ([]models.WishlistItem, error) {
	items := s.Items(ctx, visitorID)

	item = normalizeWishlistItem(item)
	if item.ID == "" {
		return items, nil
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			return items, nil
		}
	}

	items = append([]models.WishlistItem{item}, items...)
	if err := s.persist(ctx, visitorID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *WishlistService) Remove(ctx context.Context, visitorID, id string) ([]models.WishlistItem, error) {
	items := s.Items(ctx, visitorID)

	id = strings.TrimSpace(id)
	kept := items[:0:0]
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return items, nil
	}

	if err := s.persist(ctx, visitorID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Toggle removes the item when present, otherwise prepends it. Exactly one
// of the two happens.
func (s *WishlistService) Toggle(ctx context.Context, visitorID string, item models.WishlistItem) ([]models.WishlistItem, bool, error) {
	item = normalizeWishlistItem(item)
	if item.ID == "" {
		return s.Items(ctx, visitorID), false, nil
	}

	if s.Has(ctx, visitorID, item.ID) {
		items, err := s.Remove(ctx, visitorID, item.ID)
		return items, false, err
	}
	items, err := s.Add(ctx, visitorID, item)
	return items, true, err
}

func (s *WishlistService) Clear(ctx context.Context, visitorID string) error {
	return s.Store.Delete(ctx, visitorID)
}

func (s *WishlistService) persist(ctx context.Context, visitorID string, items []models.WishlistItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Store.Put(ctx, visitorID, raw)
}

func normalizeWishlistItem(item models.WishlistItem) models.WishlistItem {
	item.ID = strings.TrimSpace(item.ID)
	item.Title = strings.TrimSpace(item.Title)
	item.Image = strings.TrimSpace(item.Image)
	item.Price = strings.TrimSpace(item.Price)
	item.Location = strings.TrimSpace(item.Location)
	return item
}

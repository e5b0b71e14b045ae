package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// menuService is the concrete implementation of MenuService
type menuService struct {
	menu repository.MenuRepository
	log  zerolog.Logger
}

// newMenuService creates a new MenuService
func newMenuService(menu repository.MenuRepository, log zerolog.Logger) *menuService {
	return &menuService{
		menu: menu,
		log:  log.With().Str("service", "menu").Logger(),
	}
}

// Create creates a menu entry. A parent, when given, must exist and must
// itself be a top-level entry; the menu supports one level of nesting.
func (s *menuService) Create(ctx context.Context, req *models.MenuItemCreateRequest) (*models.MenuItem, error) {
	if req.ParentID != nil {
		parent, err := s.menu.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent menu item: %w", err)
		}
		if parent == nil || parent.ParentID != nil {
			return nil, fmt.Errorf("%w: parent menu item", ErrNotFound)
		}
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	now := time.Now().UTC()
	item := &models.MenuItem{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Path:      req.Path,
		NewTab:    req.NewTab,
		Order:     order,
		Published: published,
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.menu.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.log.Info().Str("menu_item_id", item.ID).Msg("Menu item created")
	return item, nil
}

// Tree returns the menu as top-level entries with nested children, both
// levels ordered by display order
func (s *menuService) Tree(ctx context.Context, publishedOnly bool) ([]*models.MenuItem, error) {
	items, err := s.menu.List(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	byID := make(map[string]*models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	roots := make([]*models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ParentID == nil {
			roots = append(roots, item)
			continue
		}
		if parent, ok := byID[*item.ParentID]; ok {
			parent.Children = append(parent.Children, item)
		}
		// An item whose parent is filtered out is dropped rather than
		// promoted to the top level.
	}

	return roots, nil
}

// Update applies a partial update to a menu entry
func (s *menuService) Update(ctx context.Context, id string, req *models.MenuItemUpdateRequest) (*models.MenuItem, error) {
	item, err := s.menu.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, fmt.Errorf("%w: menu item cannot be its own parent", ErrNotFound)
		}
		parent, err := s.menu.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent menu item: %w", err)
		}
		if parent == nil || parent.ParentID != nil {
			return nil, fmt.Errorf("%w: parent menu item", ErrNotFound)
		}
		item.ParentID = req.ParentID
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Path != nil {
		item.Path = *req.Path
	}
	if req.NewTab != nil {
		item.NewTab = *req.NewTab
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.Published != nil {
		item.Published = *req.Published
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.menu.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	s.log.Info().Str("menu_item_id", id).Msg("Menu item updated")
	return item, nil
}

// Delete removes a menu entry; children are detached, not deleted
func (s *menuService) Delete(ctx context.Context, id string) error {
	deleted, err := s.menu.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("menu_item_id", id).Msg("Menu item deleted")
	return nil
}

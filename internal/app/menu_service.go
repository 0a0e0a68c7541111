package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Blessan-Alex/street-feast-rom/internal/core/menu"
	"github.com/Blessan-Alex/street-feast-rom/internal/ports/primary"
	"github.com/Blessan-Alex/street-feast-rom/internal/ports/secondary"
)

// MenuServiceImpl implements the MenuService interface.
type MenuServiceImpl struct {
	categoryRepo secondary.CategoryRepository
	itemRepo     secondary.ItemRepository
	now          func() time.Time
	newID        func() string
}

// NewMenuService creates a new MenuService with injected dependencies.
func NewMenuService(
	categoryRepo secondary.CategoryRepository,
	itemRepo secondary.ItemRepository,
) *MenuServiceImpl {
	return &MenuServiceImpl{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// CreateCategory creates a new active category.
func (s *MenuServiceImpl) CreateCategory(ctx context.Context, name string) (*primary.Category, error) {
	name = strings.TrimSpace(name)
	if guard := menu.CanCreateCategory(name); !guard.Allowed {
		return nil, guard.Error()
	}

	if _, err := s.categoryRepo.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("category %q already exists", name)
	} else if !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	now := s.now()
	record := &secondary.CategoryRecord{
		ID:        s.newID(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categoryRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return recordToCategory(record), nil
}

// GetCategory retrieves a category by ID.
func (s *MenuServiceImpl) GetCategory(ctx context.Context, id string) (*primary.Category, error) {
	record, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToCategory(record), nil
}

// ListCategories retrieves categories, active only by default.
func (s *MenuServiceImpl) ListCategories(ctx context.Context, includeInactive bool) ([]*primary.Category, error) {
	records, err := s.categoryRepo.List(ctx, secondary.CategoryFilters{IncludeInactive: includeInactive})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*primary.Category, 0, len(records))
	for _, record := range records {
		categories = append(categories, recordToCategory(record))
	}
	return categories, nil
}

// UpdateCategory renames or toggles a category.
func (s *MenuServiceImpl) UpdateCategory(ctx context.Context, req primary.UpdateCategoryRequest) (*primary.Category, error) {
	record, err := s.getCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if guard := menu.CanCreateCategory(name); !guard.Allowed {
			return nil, guard.Error()
		}
		record.Name = name
	}
	if req.Active != nil {
		record.Active = *req.Active
	}
	record.UpdatedAt = s.now()

	if err := s.categoryRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return recordToCategory(record), nil
}

// DeleteCategory removes a category and cascades to its items. A non-empty
// category requires Force.
func (s *MenuServiceImpl) DeleteCategory(ctx context.Context, req primary.DeleteCategoryRequest) error {
	record, err := s.getCategory(ctx, req.CategoryID)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountItems(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to count items: %w", err)
	}

	guard := menu.CanDeleteCategory(menu.DeleteCategoryContext{
		CategoryID:  record.Name,
		ItemCount:   count,
		ForceDelete: req.Force,
	})
	if !guard.Allowed {
		return guard.Error()
	}

	if err := s.categoryRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// CreateItem creates one or two items: a "Both" veg flag expands into a Veg
// and a Non-Veg variant.
func (s *MenuServiceImpl) CreateItem(ctx context.Context, req primary.CreateItemRequest) ([]*primary.Item, error) {
	name := strings.TrimSpace(req.Name)

	_, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	categoryExists := err == nil
	if err != nil && !errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	guard := menu.CanCreateItem(menu.CreateItemContext{
		Name:           name,
		CategoryExists: categoryExists,
		CategoryID:     req.CategoryID,
	})
	if !guard.Allowed {
		return nil, guard.Error()
	}

	specs := menu.ExpandItem(name, req.Sizes, req.Veg)
	now := s.now()

	items := make([]*primary.Item, 0, len(specs))
	for _, spec := range specs {
		record := &secondary.ItemRecord{
			ID:         s.newID(),
			CategoryID: req.CategoryID,
			Name:       spec.Name,
			Sizes:      spec.Sizes,
			Veg:        string(spec.Veg),
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.itemRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create item %q: %w", spec.Name, err)
		}
		items = append(items, recordToItem(record))
	}
	return items, nil
}

// GetItem retrieves a menu item by ID.
func (s *MenuServiceImpl) GetItem(ctx context.Context, id string) (*primary.Item, error) {
	record, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return recordToItem(record), nil
}

// ListItems retrieves items, optionally scoped to a category.
func (s *MenuServiceImpl) ListItems(ctx context.Context, req primary.ListItemsRequest) ([]*primary.Item, error) {
	records, err := s.itemRepo.List(ctx, secondary.ItemFilters{
		CategoryID:      req.CategoryID,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]*primary.Item, 0, len(records))
	for _, record := range records {
		items = append(items, recordToItem(record))
	}
	return items, nil
}

// UpdateItem applies a partial update to a menu item. Only binary veg flags
// are accepted here; "Both" is a creation-time designation.
func (s *MenuServiceImpl) UpdateItem(ctx context.Context, req primary.UpdateItemRequest) (*primary.Item, error) {
	record, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("item name is required")
		}
		record.Name = name
	}
	if req.Sizes != nil {
		record.Sizes = *req.Sizes
	}
	if req.Veg != nil {
		flag, ok := menu.ParseVegFlag(*req.Veg)
		if !ok {
			return nil, fmt.Errorf("invalid veg flag %q", *req.Veg)
		}
		record.Veg = string(flag)
	}
	if req.Active != nil {
		record.Active = *req.Active
	}
	record.UpdatedAt = s.now()

	if err := s.itemRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return recordToItem(record), nil
}

// ImportCSV validates an uploaded menu CSV and, when apply is set and
// validation passes, creates the categories and items it describes.
// Categories are created on demand; item veg designations expand the same
// way as direct creation.
func (s *MenuServiceImpl) ImportCSV(ctx context.Context, req primary.ImportCSVRequest) (*primary.ImportCSVResult, error) {
	validated := menu.ValidateCSV(req.Headers, req.Records)

	result := &primary.ImportCSVResult{
		Valid:    validated.Valid,
		Errors:   validated.Errors,
		RowCount: len(validated.Rows),
	}
	for _, row := range validated.Rows {
		if row.Err != "" {
			result.RowErrors = append(result.RowErrors, row.Err)
		}
	}

	if !req.Apply || !validated.Valid {
		return result, nil
	}

	categoryIDs := make(map[string]string)
	for _, row := range validated.Rows {
		categoryID, ok := categoryIDs[row.Category]
		if !ok {
			var err error
			categoryID, err = s.ensureCategory(ctx, row.Category, result)
			if err != nil {
				return nil, err
			}
			categoryIDs[row.Category] = categoryID
		}

		now := s.now()
		for _, spec := range menu.ExpandItem(row.ItemName, row.Sizes, row.Veg) {
			record := &secondary.ItemRecord{
				ID:         s.newID(),
				CategoryID: categoryID,
				Name:       spec.Name,
				Sizes:      spec.Sizes,
				Veg:        string(spec.Veg),
				Active:     true,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := s.itemRepo.Create(ctx, record); err != nil {
				return nil, fmt.Errorf("failed to import item %q: %w", spec.Name, err)
			}
			result.ItemsCreated++
		}
	}

	result.Applied = true
	return result, nil
}

// ResetMenu removes every category and item.
func (s *MenuServiceImpl) ResetMenu(ctx context.Context) error {
	if err := s.categoryRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset menu: %w", err)
	}
	return nil
}

// ensureCategory returns the ID of the named category, creating it when it
// does not exist yet.
func (s *MenuServiceImpl) ensureCategory(ctx context.Context, name string, result *primary.ImportCSVResult) (string, error) {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return "", fmt.Errorf("failed to look up category %q: %w", name, err)
	}

	now := s.now()
	record := &secondary.CategoryRecord{
		ID:        s.newID(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categoryRepo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to create category %q: %w", name, err)
	}
	result.CategoriesCreated++
	return record.ID, nil
}

func (s *MenuServiceImpl) getCategory(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	record, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return record, nil
}

func recordToCategory(record *secondary.CategoryRecord) *primary.Category {
	return &primary.Category{
		ID:        record.ID,
		Name:      record.Name,
		Active:    record.Active,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func recordToItem(record *secondary.ItemRecord) *primary.Item {
	return &primary.Item{
		ID:         record.ID,
		CategoryID: record.CategoryID,
		Name:       record.Name,
		Sizes:      record.Sizes,
		Veg:        record.Veg,
		Active:     record.Active,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

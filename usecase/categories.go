package usecase

import (
	"context"
	"fmt"
	"strings"

	"edushare/model"
	"edushare/repository"
	"edushare/utils"
)

type CategoryService struct {
	CategoriesRepo *repository.CategoriesRepo
	UserRepo       *repository.UserRepo

	// Notes handles the cascade when a category is deleted.
	Notes *NotesService
}

func (s *CategoryService) requireTeacher(ctx context.Context, actingUserID string) error {
	actingUser, err := s.UserRepo.FindUser(ctx, actingUserID)
	if err != nil {
		return err
	}
	if actingUser == nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, actingUserID)
	}
	if !actingUser.IsTeacher() {
		return fmt.Errorf("%w: only teachers may manage categories", ErrForbidden)
	}
	return nil
}

// CreateCategory adds a category, optionally nested under a parent.
// Teachers only.
func (s *CategoryService) CreateCategory(ctx context.Context, actingUserID string, category *model.Category) error {
	if err := s.requireTeacher(ctx, actingUserID); err != nil {
		return err
	}

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}

	if category.ParentID != "" {
		parent, err := s.CategoriesRepo.GetCategory(ctx, category.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("%w: parent category %s", ErrNotFound, category.ParentID)
		}
	}

	if category.ID == "" {
		category.ID = utils.GenerateID()
	}
	return s.CategoriesRepo.CreateCategory(ctx, category)
}

func (s *CategoryService) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	category, err := s.CategoriesRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.CategoriesRepo.GetAllCategories(ctx)
}

// UpdateCategory renames or re-parents a category. Teachers only.
func (s *CategoryService) UpdateCategory(ctx context.Context, actingUserID, categoryID string, updates *model.Category) error {
	if err := s.requireTeacher(ctx, actingUserID); err != nil {
		return err
	}

	existing, err := s.CategoriesRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
	}

	updates.Name = strings.TrimSpace(updates.Name)
	if updates.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}

	if updates.ParentID != "" {
		if updates.ParentID == categoryID {
			return fmt.Errorf("%w: category cannot be its own parent", ErrValidation)
		}
		parent, err := s.CategoriesRepo.GetCategory(ctx, updates.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return fmt.Errorf("%w: parent category %s", ErrNotFound, updates.ParentID)
		}
	}

	return s.CategoriesRepo.UpdateCategory(ctx, categoryID, updates)
}

// DeleteCategory removes a category. Teachers only. Notes filed under it
// are deleted through the regular note pipeline, so their ratings cascade
// and uploaders are debited; subcategories survive as top-level.
func (s *CategoryService) DeleteCategory(ctx context.Context, actingUserID, categoryID string) error {
	if err := s.requireTeacher(ctx, actingUserID); err != nil {
		return err
	}

	category, err := s.CategoriesRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
	}

	notes, err := s.Notes.NotesRepo.GetNotesByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	for _, note := range notes {
		if err := s.Notes.DeleteNote(ctx, note.ID, actingUserID); err != nil {
			return err
		}
	}

	if err := s.CategoriesRepo.DetachChildren(ctx, categoryID); err != nil {
		return err
	}
	return s.CategoriesRepo.DeleteCategory(ctx, categoryID)
}

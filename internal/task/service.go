// AngelaMos | 2026
// service.go

package task

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrClassNotOwned is returned when a task links to a class that does not
// exist or belongs to another user.
var ErrClassNotOwned = errors.New("linked class not found")

type ClassChecker interface {
	OwnedBy(ctx context.Context, classID, ownerID int64) (bool, error)
}

type Service struct {
	repo    Repository
	classes ClassChecker
}

func NewService(repo Repository, classes ClassChecker) *Service {
	return &Service{
		repo:    repo,
		classes: classes,
	}
}

func (s *Service) List(
	ctx context.Context,
	ownerID int64,
	classID *int64,
) ([]Response, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID, classID)
	if err != nil {
		return nil, err
	}

	return ToResponseList(tasks), nil
}

func (s *Service) Create(
	ctx context.Context,
	ownerID int64,
	req UpsertRequest,
) (*Task, error) {
	if err := s.checkClassLink(ctx, ownerID, req.ClassID); err != nil {
		return nil, err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	t := &Task{
		UserID:      ownerID,
		ClassID:     req.ClassID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Update(
	ctx context.Context,
	ownerID, id int64,
	req UpsertRequest,
) error {
	if err := s.checkClassLink(ctx, ownerID, req.ClassID); err != nil {
		return err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return err
	}

	t := &Task{
		ID:          id,
		UserID:      ownerID,
		ClassID:     req.ClassID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}

	return s.repo.Update(ctx, t)
}

func (s *Service) ToggleComplete(
	ctx context.Context,
	ownerID, id int64,
) (bool, error) {
	return s.repo.ToggleComplete(ctx, id, ownerID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	return s.repo.Delete(ctx, id, ownerID)
}

// A supplied class_id must belong to the caller. The linked class being
// someone else's and it not existing are the same answer.
func (s *Service) checkClassLink(
	ctx context.Context,
	ownerID int64,
	classID *int64,
) error {
	if classID == nil {
		return nil
	}

	owned, err := s.classes.OwnedBy(ctx, *classID, ownerID)
	if err != nil {
		return fmt.Errorf("check class link: %w", err)
	}

	if !owned {
		return ErrClassNotOwned
	}

	return nil
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dueDateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("parse due date: %w", err)
	}

	return &parsed, nil
}

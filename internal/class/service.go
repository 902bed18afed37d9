// AngelaMos | 2026
// service.go

package class

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(
	ctx context.Context,
	ownerID int64,
) ([]Response, error) {
	classes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return ToResponseList(classes), nil
}

func (s *Service) Create(
	ctx context.Context,
	ownerID int64,
	req UpsertRequest,
) (*Class, error) {
	c := &Class{
		UserID:    ownerID,
		Name:      req.Name,
		Professor: req.Professor,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Classroom: req.Classroom,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	ownerID, id int64,
	req UpsertRequest,
) error {
	c := &Class{
		ID:        id,
		UserID:    ownerID,
		Name:      req.Name,
		Professor: req.Professor,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Classroom: req.Classroom,
	}

	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	return s.repo.Delete(ctx, id, ownerID)
}

// OwnedBy reports whether the class exists and belongs to ownerID. Tasks
// use it to reject links to another user's class.
func (s *Service) OwnedBy(
	ctx context.Context,
	classID, ownerID int64,
) (bool, error) {
	return s.repo.ExistsForOwner(ctx, classID, ownerID)
}

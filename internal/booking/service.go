package booking

import (
	"context"
	"errors"
	"time"

	"github.com/silverpine/fleet-booking/internal/resource"
)

type CreateRequest struct {
	UserID         string
	ResourceID     string
	BookingDate    time.Time
	StartTime      TimeOfDay
	EndTime        TimeOfDay
	RepeatOption   RepeatOption
	EndRepeatDate  *time.Time
	DaysToRepeatOn *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	resService resource.Service
}

func NewService(repo Repository, resService resource.Service) Service {
	return &service{
		repo:       repo,
		resService: resService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	repeat := req.RepeatOption
	if repeat == "" {
		repeat = RepeatNone
	}
	if !repeat.Valid() {
		return nil, ErrInvalidRepeatOption
	}

	bookingDate := DateOnly(req.BookingDate)

	var endRepeat *time.Time
	if req.EndRepeatDate != nil {
		if repeat == RepeatNone {
			return nil, ErrRepeatDateNotNeeded
		}
		d := DateOnly(*req.EndRepeatDate)
		if d.Before(bookingDate) {
			return nil, ErrInvalidRepeatRange
		}
		endRepeat = &d
	}

	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	candidate := &Booking{
		ResourceID:     req.ResourceID,
		UserID:         req.UserID,
		BookingDate:    bookingDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		RepeatOption:   repeat,
		EndRepeatDate:  endRepeat,
		DaysToRepeatOn: req.DaysToRepeatOn,
	}

	existing, err := s.repo.ListByResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if HasConflict(candidate, existing) {
		return nil, ErrTimeConflict
	}

	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, candidate.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

package student

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type EnrollRequest struct {
	Age            int
	Name           string
	EnrollmentCode string
	ClassName      string
}

// UpdateRequest changes only the non-nil fields.
type UpdateRequest struct {
	Age            *int
	Name           *string
	EnrollmentCode *string
	ClassName      *string
}

// Registry keeps the students enrolled during one session, in enrollment order.
// Enrollment codes are not required to be unique.
type Registry interface {
	Enroll(ctx context.Context, req EnrollRequest) (*Student, error)
	List(ctx context.Context) []*Student
	Get(ctx context.Context, id string) (*Student, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Student, error)
}

type registry struct {
	students []*Student
	byID     map[string]*Student
	logger   *slog.Logger
}

func NewRegistry(logger *slog.Logger) Registry {
	return &registry{
		byID:   make(map[string]*Student),
		logger: logger,
	}
}

func (r *registry) Enroll(ctx context.Context, req EnrollRequest) (*Student, error) {
	s, err := New(req.Age, req.Name, req.EnrollmentCode, req.ClassName)
	if err != nil {
		r.logger.InfoContext(ctx, "enrollment rejected", "name", req.Name, "error", err)
		return nil, err
	}

	s.id = uuid.NewString()
	r.students = append(r.students, s)
	r.byID[s.id] = s

	r.logger.InfoContext(ctx, "student enrolled", "id", s.id, "class", s.className)
	return s, nil
}

func (r *registry) List(ctx context.Context) []*Student {
	out := make([]*Student, len(r.students))
	copy(out, r.students)
	return out
}

func (r *registry) Get(ctx context.Context, id string) (*Student, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return s, nil
}

// Update applies all changes to a copy first, so a rejected field leaves
// the stored student untouched.
func (r *registry) Update(ctx context.Context, id string, req UpdateRequest) (*Student, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *s
	if req.Age != nil {
		if err := next.SetAge(*req.Age); err != nil {
			return nil, err
		}
	}
	if req.EnrollmentCode != nil {
		if err := next.SetEnrollmentCode(*req.EnrollmentCode); err != nil {
			return nil, err
		}
	}
	if req.ClassName != nil {
		if err := next.SetClassName(*req.ClassName); err != nil {
			return nil, err
		}
	}
	if req.Name != nil {
		next.SetName(*req.Name)
	}

	*s = next
	r.logger.InfoContext(ctx, "student updated", "id", id)
	return s, nil
}

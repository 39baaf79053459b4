package testimonials

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agencysite/internal/api"
)

// Source tells callers whether a list came from the backend or the fallback set.
type Source string

const (
	SourceBackend  Source = "backend"
	SourceFallback Source = "fallback"
)

// Service wraps the backend testimonial endpoints.
type Service struct {
	client *api.Client
	logger *zap.Logger
}

func NewService(client *api.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// ListPublic returns the public testimonials, or the fallback set when the
// backend fails.
func (s *Service) ListPublic(ctx context.Context) ([]Testimonial, Source) {
	return s.list(ctx, "/testimonials")
}

// ListAdmin returns every testimonial, unpublished ones included.
func (s *Service) ListAdmin(ctx context.Context) ([]Testimonial, Source) {
	return s.list(ctx, "/admin/testimonials")
}

func (s *Service) list(ctx context.Context, path string) ([]Testimonial, Source) {
	var list []Testimonial
	if err := s.client.Get(ctx, path, &list); err != nil {
		s.logger.Warn("Failed to fetch testimonials, using fallback set",
			zap.String("path", path), zap.Error(err))
		return FallbackTestimonials(), SourceFallback
	}
	return list, SourceBackend
}

func (s *Service) Create(ctx context.Context, in Input) (Testimonial, error) {
	if err := in.Validate(); err != nil {
		return Testimonial{}, err
	}

	var created Testimonial
	if err := s.client.Post(ctx, "/testimonials", in, &created); err != nil {
		return Testimonial{}, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, in Input) (Testimonial, error) {
	if err := in.Validate(); err != nil {
		return Testimonial{}, err
	}

	var updated Testimonial
	if err := s.client.Put(ctx, testimonialPath(id), in, &updated); err != nil {
		return Testimonial{}, fmt.Errorf("failed to update testimonial %d: %w", id, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, testimonialPath(id)); err != nil {
		return fmt.Errorf("failed to delete testimonial %d: %w", id, err)
	}
	return nil
}

func testimonialPath(id int) string {
	return fmt.Sprintf("/testimonials/%d", id)
}

package projects

import (
	"context"
	"fmt"
	"net/url"

	"agencysite/internal/api"
)

// Service talks to the backend project endpoints and returns canonical records.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// HasToken reports whether an admin token is stored.
func (s *Service) HasToken(ctx context.Context) bool {
	return s.client.HasToken(ctx)
}

// List returns the public project list.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.list(ctx, "/projects")
}

// ListAdmin returns every project, drafts included.
func (s *Service) ListAdmin(ctx context.Context) ([]Project, error) {
	return s.list(ctx, "/admin/projects")
}

func (s *Service) list(ctx context.Context, path string) ([]Project, error) {
	var wire []WireProject
	if err := s.client.Get(ctx, path, &wire); err != nil {
		return nil, err
	}

	out := make([]Project, 0, len(wire))
	for _, w := range wire {
		out = append(out, ToFrontend(w))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, draft Draft) (Project, error) {
	var created WireProject
	if err := s.client.Post(ctx, "/admin/projects", ToWire(DraftPatch(draft)), &created); err != nil {
		return Project{}, err
	}
	return ToFrontend(created), nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (Project, error) {
	var updated WireProject
	if err := s.client.Put(ctx, projectPath(id), ToWire(patch), &updated); err != nil {
		return Project{}, err
	}
	return ToFrontend(updated), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, projectPath(id))
}

func projectPath(id string) string {
	return fmt.Sprintf("/admin/projects/%s", url.PathEscape(id))
}

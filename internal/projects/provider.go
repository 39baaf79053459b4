package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"agencysite/internal/api"
	"agencysite/internal/store"
)

// Backend is the remote side of the Provider. *Service implements it.
type Backend interface {
	HasToken(ctx context.Context) bool
	List(ctx context.Context) ([]Project, error)
	ListAdmin(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, draft Draft) (Project, error)
	Update(ctx context.Context, id string, patch Patch) (Project, error)
	Delete(ctx context.Context, id string) error
}

var errNoBackend = errors.New("no backend configured")

// Option configures a Provider.
type Option func(*Provider)

func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) { p.logger = logger }
}

func WithRecorder(recorder Recorder) Option {
	return func(p *Provider) { p.recorder = recorder }
}

// WithSeed replaces the sample records written on first fallback.
func WithSeed(seed []Project) Option {
	return func(p *Provider) { p.seed = seed }
}

// Provider owns the canonical in-memory project list. It tries the backend
// first and, once any backend call fails, serves everything from durable
// local storage for the rest of the process lifetime. Callers never need to
// know which mode is active.
//
// Concurrent mutations of the same id are last-write-wins; there is no
// version check.
type Provider struct {
	mu       sync.RWMutex
	backend  Backend
	kv       store.KV
	mode     Mode
	projects []Project
	byID     map[string]int
	slugs    *store.SlugIndex

	now      func() time.Time
	logger   *zap.Logger
	recorder Recorder
	seed     []Project
}

// NewProvider builds the provider and performs the initial load. It never
// fails: a backend error switches to local storage, and an empty local store
// is seeded with the sample projects.
func NewProvider(ctx context.Context, backend Backend, kv store.KV, opts ...Option) *Provider {
	p := &Provider{
		backend:  backend,
		kv:       kv,
		mode:     ModeLoading,
		byID:     make(map[string]int),
		slugs:    store.NewSlugIndex(256, 0.001),
		now:      time.Now,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
		seed:     SampleProjects(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.kv == nil {
		p.kv = store.NewMemoryKV()
	}

	p.recorder.SetProviderMode(p.mode.String())
	p.load(ctx)
	return p
}

func (p *Provider) load(ctx context.Context) {
	op := "list"
	var (
		list []Project
		err  error
	)

	switch {
	case p.backend == nil:
		err = errNoBackend
	case p.backend.HasToken(ctx):
		op = "list_admin"
		list, err = p.backend.ListAdmin(ctx)
	default:
		list, err = p.backend.List(ctx)
	}

	if err == nil {
		p.recorder.RecordBackendCall(op, "success")
		p.mu.Lock()
		defer p.mu.Unlock()
		p.apply(EventLoadSucceeded, op)
		p.setProjects(list)
		p.logger.Info("Loaded projects from backend", zap.Int("count", len(list)))
		return
	}

	if !errors.Is(err, errNoBackend) {
		p.recorder.RecordBackendCall(op, "failure")
	}
	p.logger.Warn("Backend unavailable, loading projects from local storage", zap.Error(err))

	local := p.readLocal(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(EventLoadFailed, op)
	p.setProjects(local)
}

func (p *Provider) readLocal(ctx context.Context) []Project {
	raw, ok, err := p.kv.Get(ctx, store.KeyProjects)
	if err != nil {
		// keep whatever is on disk; it may only be temporarily unreadable
		p.logger.Error("Failed to read local projects, serving samples", zap.Error(err))
		return p.seedCopy()
	}

	if ok {
		var stored []Project
		decodeErr := json.Unmarshal([]byte(raw), &stored)
		if decodeErr == nil {
			p.logger.Info("Loaded projects from local storage", zap.Int("count", len(stored)))
			return stored
		}
		p.logger.Error("Local project list is corrupt, reseeding", zap.Error(decodeErr))
	}

	seed := p.seedCopy()
	if err := p.persist(ctx, seed); err != nil {
		p.logger.Error("Failed to persist seed projects", zap.Error(err))
	}
	p.logger.Info("Seeded local storage with sample projects", zap.Int("count", len(seed)))
	return seed
}

func (p *Provider) seedCopy() []Project {
	seed := make([]Project, 0, len(p.seed))
	for _, project := range p.seed {
		seed = append(seed, project.clone())
	}
	return seed
}

// Mode returns the active operating mode.
func (p *Provider) Mode() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

// Get looks id up in the in-memory list. It never touches a backing store.
func (p *Provider) Get(id string) (Project, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	i, ok := p.byID[id]
	if !ok {
		return Project{}, false
	}
	return p.projects[i].clone(), true
}

// BySlug resolves a portfolio slug.
func (p *Provider) BySlug(slug string) (Project, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	id, ok := p.slugs.Lookup(slug)
	if !ok {
		return Project{}, false
	}
	i, ok := p.byID[id]
	if !ok {
		return Project{}, false
	}
	return p.projects[i].clone(), true
}

// List returns a copy of every project in list order.
func (p *Provider) List() []Project {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Project, 0, len(p.projects))
	for _, project := range p.projects {
		out = append(out, project.clone())
	}
	return out
}

// Published returns the projects visible on the public site.
func (p *Provider) Published() []Project {
	all := p.List()
	out := all[:0]
	for _, project := range all {
		if project.Status == StatusPublished {
			out = append(out, project)
		}
	}
	return out
}

// Add creates a project. A backend failure is never returned: the provider
// switches to local storage and creates the record there within the same call.
func (p *Provider) Add(ctx context.Context, draft Draft) (Project, error) {
	if err := draft.Validate(); err != nil {
		return Project{}, err
	}

	if p.Mode() == ModeBackendActive {
		created, err := p.backend.Create(ctx, draft)
		p.recordBackend("create", err)
		if err == nil {
			p.mu.Lock()
			defer p.mu.Unlock()

			created = p.completeBackendRecord(created, draft.Name)
			next := append(p.snapshot(), created)
			if err := p.commit(ctx, next); err != nil {
				return Project{}, err
			}
			p.slugs.Add(created.Slug, created.ID)
			return created.clone(), nil
		}
		p.demote("create", err)
	}

	return p.addLocal(ctx, draft)
}

func (p *Provider) addLocal(ctx context.Context, draft Draft) (Project, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	tags := append([]string(nil), draft.Tags...)
	if len(tags) == 0 {
		tags = TagsFor(draft.ProjectType)
	}

	project := Project{
		ID:            p.nextLocalID(now),
		Name:          draft.Name,
		NameAr:        draft.NameAr,
		Description:   draft.Description,
		DescriptionAr: draft.DescriptionAr,
		Purpose:       draft.Purpose,
		ClientName:    draft.ClientName,
		Year:          draft.Year,
		ProjectType:   draft.ProjectType,
		Tags:          tags,
		CoverImage:    draft.CoverImage,
		Slug:          Slugify(draft.Name),
		Status:        StatusPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
		Source:        SourceLocal,
	}

	if err := p.commit(ctx, append(p.snapshot(), project)); err != nil {
		return Project{}, err
	}
	p.slugs.Add(project.Slug, project.ID)
	return project.clone(), nil
}

// Update merges patch into the project with the given id. A backend 404 is
// returned as ErrNotFound; any other backend failure switches to local storage
// and retries there.
func (p *Provider) Update(ctx context.Context, id string, patch Patch) (Project, error) {
	if p.Mode() == ModeBackendActive {
		updated, err := p.backend.Update(ctx, id, patch)
		p.recordBackend("update", err)
		switch {
		case err == nil:
			return p.commitBackendUpdate(ctx, id, patch, updated)
		case api.IsNotFound(err):
			return Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		p.demote("update", err)
	}

	return p.updateLocal(ctx, id, patch)
}

func (p *Provider) commitBackendUpdate(ctx context.Context, id string, patch Patch, updated Project) (Project, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.snapshot()
	i, exists := p.byID[id]

	// an empty response body leaves only the patch to go on
	if updated.ID == "" {
		if !exists {
			return Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		updated = patch.Apply(next[i], p.now())
	} else {
		name := updated.Name
		if patch.Name != nil {
			name = *patch.Name
		}
		updated = p.completeBackendRecord(updated, name)
	}

	oldSlug := ""
	if exists {
		oldSlug = next[i].Slug
		next[i] = updated
	} else {
		next = append(next, updated)
	}
	if err := p.commit(ctx, next); err != nil {
		return Project{}, err
	}
	p.reindexSlug(oldSlug, id, updated)
	return updated.clone(), nil
}

func (p *Provider) updateLocal(ctx context.Context, id string, patch Patch) (Project, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i, ok := p.byID[id]
	if !ok {
		return Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := p.snapshot()
	oldSlug := next[i].Slug
	next[i] = patch.Apply(next[i], p.now())
	if err := p.commit(ctx, next); err != nil {
		return Project{}, err
	}
	p.reindexSlug(oldSlug, id, next[i])
	return next[i].clone(), nil
}

// Remove deletes the project with the given id. Removing an absent id is not
// an error, and neither is a backend 404.
func (p *Provider) Remove(ctx context.Context, id string) error {
	if p.Mode() == ModeBackendActive {
		err := p.backend.Delete(ctx, id)
		p.recordBackend("delete", err)
		if err == nil || api.IsNotFound(err) {
			return p.removeLocal(ctx, id)
		}
		p.demote("delete", err)
	}

	return p.removeLocal(ctx, id)
}

func (p *Provider) removeLocal(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i, ok := p.byID[id]
	if !ok {
		return nil
	}

	slug := p.projects[i].Slug
	next := p.snapshot()
	next = append(next[:i], next[i+1:]...)
	if err := p.commit(ctx, next); err != nil {
		return err
	}
	p.unindexSlug(slug, id)
	return nil
}

// demote reports a failed backend mutation to the state machine.
func (p *Provider) demote(op string, cause error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == ModeBackendActive {
		p.logger.Warn("Backend call failed, switching to local storage",
			zap.String("op", op), zap.Error(cause))
	}
	p.apply(EventMutationFailed, op)
}

// apply runs Transition and records a changed mode. Callers hold p.mu.
func (p *Provider) apply(event Event, op string) {
	next := Transition(p.mode, event)
	if next == p.mode {
		return
	}

	p.logger.Info("Provider mode changed",
		zap.String("from", p.mode.String()),
		zap.String("to", next.String()),
		zap.String("event", event.String()),
		zap.String("op", op))
	if event == EventMutationFailed {
		p.recorder.RecordDemotion(op)
	}
	p.mode = next
	p.recorder.SetProviderMode(next.String())
}

// commit makes next the canonical list. In local fallback mode the full list
// is written to durable storage first; a failed write leaves the list as it
// was. Callers hold p.mu.
func (p *Provider) commit(ctx context.Context, next []Project) error {
	if p.mode == ModeLocalFallback {
		if err := p.persist(ctx, next); err != nil {
			return fmt.Errorf("failed to persist projects: %w", err)
		}
	}
	p.projects = next
	p.reindexIDs()
	p.recorder.SetProjectCount(len(next))
	return nil
}

func (p *Provider) persist(ctx context.Context, list []Project) error {
	if list == nil {
		list = []Project{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		p.recorder.RecordLocalWrite("failure")
		return err
	}
	if err := p.kv.Set(ctx, store.KeyProjects, string(data)); err != nil {
		p.recorder.RecordLocalWrite("failure")
		return err
	}
	p.recorder.RecordLocalWrite("success")
	return nil
}

// setProjects replaces the list wholesale and rebuilds both indexes. Callers
// hold p.mu.
func (p *Provider) setProjects(list []Project) {
	p.projects = list
	p.reindexIDs()

	slugs := make(map[string]string, len(list))
	for _, project := range list {
		slugs[project.Slug] = project.ID
	}
	p.slugs.Load(slugs)
	p.recorder.SetProjectCount(len(list))
}

// reindexIDs rebuilds the id to position map. Callers hold p.mu.
func (p *Provider) reindexIDs() {
	p.byID = make(map[string]int, len(p.projects))
	for i, project := range p.projects {
		p.byID[project.ID] = i
	}
}

// reindexSlug moves id's slug entry after an update. Callers hold p.mu.
func (p *Provider) reindexSlug(oldSlug, id string, updated Project) {
	if oldSlug != updated.Slug || id != updated.ID {
		p.unindexSlug(oldSlug, id)
	}
	p.slugs.Add(updated.Slug, updated.ID)
}

// unindexSlug drops slug for id and hands it to the last remaining project
// sharing it, matching what a full rebuild would pick. Callers hold p.mu.
func (p *Provider) unindexSlug(slug, id string) {
	if slug == "" {
		return
	}
	p.slugs.Remove(slug, id)
	if _, taken := p.slugs.Lookup(slug); taken {
		return
	}
	for i := len(p.projects) - 1; i >= 0; i-- {
		if p.projects[i].Slug == slug {
			p.slugs.Add(slug, p.projects[i].ID)
			return
		}
	}
}

// snapshot copies the list so a failed commit cannot leak partial changes.
func (p *Provider) snapshot() []Project {
	out := make([]Project, len(p.projects), len(p.projects)+1)
	copy(out, p.projects)
	return out
}

func (p *Provider) nextLocalID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if _, taken := p.byID[id]; !taken {
			return id
		}
		ms++
	}
}

func (p *Provider) completeBackendRecord(project Project, name string) Project {
	if project.Name == "" {
		project.Name = name
	}
	if project.Slug == "" {
		project.Slug = Slugify(project.Name)
	}
	if project.Status == "" {
		project.Status = StatusPublished
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = p.now()
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = project.CreatedAt
	}
	project.Source = SourceBackend
	return project
}

func (p *Provider) recordBackend(op string, err error) {
	if err == nil {
		p.recorder.RecordBackendCall(op, "success")
		return
	}
	if api.IsNotFound(err) {
		p.recorder.RecordBackendCall(op, "not_found")
		return
	}
	p.recorder.RecordBackendCall(op, "failure")
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"company-profile-be/internal/dto"
	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/pkg/logger"
	"company-profile-be/internal/pkg/slug"
	"company-profile-be/internal/pkg/storage"
	"company-profile-be/internal/repository/contract"
	"company-profile-be/internal/repository/unitofwork"
	"company-profile-be/internal/resource"
	"company-profile-be/pkg/cache"
	"company-profile-be/pkg/events"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

const maxSlugAttempts = 100

// Uploads holds multipart files keyed by form field.
type Uploads map[string][]*multipart.FileHeader

// IResourceService implements the shared content operations for one
// resource type. Public lookups apply the definition's visibility filters
// and count views.
type IResourceService[M any] interface {
	Definition() *resource.Definition
	List(ctx context.Context, params dto.ListParams) (int64, []*M, error)
	ListPublic(ctx context.Context, params dto.ListParams) (int64, []*M, error)
	GetByID(ctx context.Context, id int64, public bool) (*M, error)
	GetBySlug(ctx context.Context, slug string, public bool) (*M, error)
	Create(ctx context.Context, m *M, uploads Uploads) (*M, error)
	Update(ctx context.Context, id int64, values map[string]interface{}, uploads Uploads) (*M, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status, actor string) (*M, error)
	RunAction(ctx context.Context, id int64, name string) (*M, error)
}

// ResourceServiceDeps are shared by every resource service. Storage, Cache
// and Publisher are optional.
type ResourceServiceDeps struct {
	Factory   unitofwork.RepositoryFactory
	Storage   storage.Storage
	Cache     cache.Engine
	CacheTTL  time.Duration
	Publisher IPublisherService
	Logger    logger.ILogger
}

type resourceService[M any] struct {
	def  *resource.Definition
	acc  *resource.Accessor[M]
	deps ResourceServiceDeps
	now  func() time.Time
}

func NewResourceService[M any](def *resource.Definition, deps ResourceServiceDeps) IResourceService[M] {
	if deps.Logger == nil {
		deps.Logger = logger.NewNopLogger()
	}
	return &resourceService[M]{
		def:  def,
		acc:  resource.MustAccessor[M](),
		deps: deps,
		now:  time.Now,
	}
}

func (s *resourceService[M]) Definition() *resource.Definition {
	return s.def
}

func (s *resourceService[M]) repository(ctx context.Context) (unitofwork.UnitOfWork, contract.ResourceRepository[M]) {
	uow := s.deps.Factory.NewUnitOfWork(ctx)
	return uow, unitofwork.Repository[M](uow)
}

func (s *resourceService[M]) query(params dto.ListParams, scope []contract.Filter) contract.Query {
	keys := make([]string, 0, len(params.Filters))
	for k := range params.Filters {
		if _, ok := s.def.Filters[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	filters := make([]contract.Filter, 0, len(keys)+len(scope))
	for _, k := range keys {
		filters = append(filters, contract.Eq(k, params.Filters[k]))
	}
	filters = append(filters, scope...)

	q := contract.Query{
		Filters: filters,
		Sort:    s.def.DefaultSort,
		Limit:   params.Limit,
		Offset:  params.Offset(),
	}
	if term := strings.TrimSpace(params.Search); term != "" && len(s.def.SearchColumns) > 0 {
		q.Search = contract.Search{Term: term, Columns: s.def.SearchColumns}
	}
	return q
}

func (s *resourceService[M]) List(ctx context.Context, params dto.ListParams) (int64, []*M, error) {
	_, repo := s.repository(ctx)
	return repo.FindMany(ctx, s.query(params, nil))
}

type cachedPage[M any] struct {
	Total int64 `json:"total"`
	Items []*M  `json:"items"`
}

func (s *resourceService[M]) cacheKey(params dto.ListParams) string {
	raw, _ := json.Marshal(params)
	sum := sha256.Sum256(raw)
	return s.def.CacheKey() + hex.EncodeToString(sum[:8])
}

func (s *resourceService[M]) ListPublic(ctx context.Context, params dto.ListParams) (int64, []*M, error) {
	key := s.cacheKey(params)
	if s.deps.Cache != nil {
		var page cachedPage[M]
		found, err := cache.GetJSON(ctx, s.deps.Cache, key, &page)
		if err != nil {
			s.deps.Logger.Warn("ResourceService", "Cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		} else if found {
			return page.Total, page.Items, nil
		}
	}

	_, repo := s.repository(ctx)
	total, rows, err := repo.FindMany(ctx, s.query(params, s.def.PublicFilters))
	if err != nil {
		return 0, nil, err
	}

	if s.deps.Cache != nil {
		if err := s.deps.Cache.Set(ctx, key, cachedPage[M]{Total: total, Items: rows}, s.deps.CacheTTL); err != nil {
			s.deps.Logger.Warn("ResourceService", "Cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
	return total, rows, nil
}

func (s *resourceService[M]) GetByID(ctx context.Context, id int64, public bool) (*M, error) {
	return s.get(ctx, "id", id, public)
}

func (s *resourceService[M]) GetBySlug(ctx context.Context, value string, public bool) (*M, error) {
	if !s.def.HasSlug() {
		return nil, apperr.NotFound(s.def.Name)
	}
	return s.get(ctx, "slug", value, public)
}

func (s *resourceService[M]) get(ctx context.Context, column string, value interface{}, public bool) (*M, error) {
	_, repo := s.repository(ctx)

	m, err := s.find(ctx, repo, column, value, public)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound(s.def.Name)
	}

	if public && s.def.ViewColumn != "" {
		counted, err := repo.Increment(ctx, s.acc.ID(m), s.def.ViewColumn, 1)
		if err != nil {
			return nil, err
		}
		if counted {
			s.bumpViews(m)
		}
	}
	return m, nil
}

func (s *resourceService[M]) find(ctx context.Context, repo contract.ResourceRepository[M], column string, value interface{}, public bool) (*M, error) {
	if !public || len(s.def.PublicFilters) == 0 {
		if column == "id" {
			return repo.FindByID(ctx, value.(int64))
		}
		return repo.FindBySlug(ctx, value.(string))
	}

	filters := make([]contract.Filter, 0, len(s.def.PublicFilters)+1)
	filters = append(filters, contract.Eq(column, value))
	filters = append(filters, s.def.PublicFilters...)

	_, rows, err := repo.FindMany(ctx, contract.Query{Filters: filters, Limit: 1})
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// bumpViews mirrors the in-place increment on the copy already read.
func (s *resourceService[M]) bumpViews(m *M) {
	v, err := s.acc.Get(m, s.def.ViewColumn)
	if err != nil {
		return
	}
	switch n := v.(type) {
	case int64:
		_ = s.acc.Set(m, s.def.ViewColumn, n+1)
	case int:
		_ = s.acc.Set(m, s.def.ViewColumn, n+1)
	}
}

func (s *resourceService[M]) Create(ctx context.Context, m *M, uploads Uploads) (*M, error) {
	for _, column := range s.protectedColumns() {
		if s.acc.Has(column) {
			_ = s.acc.Set(m, column, nil)
		}
	}

	stored, err := s.storeUploads(ctx, uploads)
	if err != nil {
		return nil, err
	}
	done := false
	defer func() {
		if !done {
			s.removeFiles(ctx, stored.urls())
		}
	}()

	for _, up := range stored {
		value := interface{}(up.urls[0])
		if up.field.Multiple {
			value = append(s.acc.Strings(m, up.field.Column), up.urls...)
		}
		if err := s.acc.Set(m, up.field.Column, value); err != nil {
			return nil, errors.Wrap(err, "apply upload")
		}
	}

	uow, repo := s.repository(ctx)
	if s.def.HasSlug() {
		resolved, err := s.resolveSlug(ctx, uow, repo, s.acc.String(m, "slug"), s.acc.String(m, s.def.SlugSource), 0)
		if err != nil {
			return nil, err
		}
		if err := s.acc.Set(m, "slug", resolved); err != nil {
			return nil, errors.Wrap(err, "apply slug")
		}
	}

	if err := repo.Create(ctx, m); err != nil {
		return nil, err
	}
	done = true

	s.afterWrite(ctx, events.ActionCreated, m)
	return m, nil
}

func (s *resourceService[M]) Update(ctx context.Context, id int64, values map[string]interface{}, uploads Uploads) (*M, error) {
	values = s.sanitize(values)

	uow, repo := s.repository(ctx)
	existing, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound(s.def.Name)
	}

	stored, err := s.storeUploads(ctx, uploads)
	if err != nil {
		return nil, err
	}
	done := false
	defer func() {
		if !done {
			s.removeFiles(ctx, stored.urls())
		}
	}()

	for _, up := range stored {
		if !up.field.Multiple {
			values[up.field.Column] = up.urls[0]
			continue
		}
		base, ok := values[up.field.Column]
		list := toStrings(base)
		if !ok {
			list = s.acc.Strings(existing, up.field.Column)
		}
		values[up.field.Column] = datatypes.JSONSlice[string](append(list, up.urls...))
	}

	if raw, ok := values["slug"]; ok && s.def.HasSlug() {
		requested, _ := raw.(string)
		if requested != s.acc.String(existing, "slug") {
			source, ok := values[s.def.SlugSource].(string)
			if !ok {
				source = s.acc.String(existing, s.def.SlugSource)
			}
			resolved, err := s.resolveSlug(ctx, uow, repo, requested, source, id)
			if err != nil {
				return nil, err
			}
			values["slug"] = resolved
		}
	}

	if len(values) == 0 {
		done = true
		return existing, nil
	}

	updated, err := repo.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound(s.def.Name)
	}
	done = true

	s.removeFiles(ctx, s.droppedFiles(existing, updated))
	s.afterWrite(ctx, events.ActionUpdated, updated)
	return updated, nil
}

// Delete removes the record and retires its slug in one transaction. Owned
// files are removed once the transaction commits.
func (s *resourceService[M]) Delete(ctx context.Context, id int64) error {
	uow := s.deps.Factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer uow.Rollback()

	repo := unitofwork.Repository[M](uow)
	existing, err := repo.LockByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound(s.def.Name)
	}

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound(s.def.Name)
	}

	if s.def.HasSlug() {
		if current := s.acc.String(existing, "slug"); current != "" {
			if err := uow.RetiredSlugRepository().Retire(ctx, s.def.Path, current); err != nil {
				return err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	s.removeFiles(ctx, s.fileURLs(existing))
	s.afterWrite(ctx, events.ActionDeleted, existing)
	return nil
}

// UpdateStatus moves the record to status under a row lock. Moving to the
// current status is a no-op.
func (s *resourceService[M]) UpdateStatus(ctx context.Context, id int64, status, actor string) (*M, error) {
	sm := s.def.Status
	if sm == nil {
		return nil, apperr.NotFound(s.def.Name + " status")
	}
	if !sm.Known(status) {
		return nil, apperr.InvalidField("status", "must be one of: "+strings.Join(sm.Values, ", "))
	}

	uow := s.deps.Factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer uow.Rollback()

	repo := unitofwork.Repository[M](uow)
	current, err := repo.LockByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperr.NotFound(s.def.Name)
	}

	from := s.acc.String(current, sm.Column)
	if !sm.Allowed(from, status) {
		return nil, apperr.InvalidField("status", fmt.Sprintf("cannot change from %s to %s", from, status))
	}
	if from == status {
		return current, uow.Commit()
	}

	values := map[string]interface{}{sm.Column: status}
	if sm.OnEnter != nil {
		for k, v := range sm.OnEnter(status, actor, s.now()) {
			values[k] = v
		}
	}

	updated, err := repo.Update(ctx, id, values)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound(s.def.Name)
	}
	if err := uow.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit transaction")
	}

	s.afterWrite(ctx, events.ActionStatusChanged, updated)
	return updated, nil
}

func (s *resourceService[M]) RunAction(ctx context.Context, id int64, name string) (*M, error) {
	action, ok := s.def.Actions[name]
	if !ok {
		return nil, apperr.NotFound(s.def.Name + " action")
	}

	_, repo := s.repository(ctx)
	updated, err := repo.Update(ctx, id, action.Values(s.now()))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound(s.def.Name)
	}

	s.afterWrite(ctx, name, updated)
	return updated, nil
}

// protectedColumns are never taken from callers.
func (s *resourceService[M]) protectedColumns() []string {
	cols := []string{"id", "created_at", "updated_at"}
	if s.def.ViewColumn != "" {
		cols = append(cols, s.def.ViewColumn)
	}
	return cols
}

// sanitize copies values without protected, unknown or status columns.
func (s *resourceService[M]) sanitize(values map[string]interface{}) map[string]interface{} {
	blocked := map[string]bool{}
	for _, c := range s.protectedColumns() {
		blocked[c] = true
	}
	if s.def.Status != nil {
		blocked[s.def.Status.Column] = true
	}

	out := make(map[string]interface{}, len(values))
	for k, v := range values {
		if blocked[k] || !s.acc.Has(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// resolveSlug validates a requested slug or derives one from source,
// appending -2, -3... until it is free. Retired slugs are never handed out.
func (s *resourceService[M]) resolveSlug(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	repo contract.ResourceRepository[M],
	requested, source string,
	selfID int64,
) (string, error) {
	retired := uow.RetiredSlugRepository()

	if requested != "" {
		gone, err := retired.IsRetired(ctx, s.def.Path, requested)
		if err != nil {
			return "", err
		}
		if gone {
			return "", apperr.Constraint("slug", "slug belonged to a deleted record and cannot be reused")
		}
		return requested, nil
	}

	base := slug.Make(source)
	if base == "" {
		base = slug.Make(s.def.Name)
	}

	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := base
		if n > 1 {
			candidate = slug.WithSuffix(base, n)
		}

		gone, err := retired.IsRetired(ctx, s.def.Path, candidate)
		if err != nil {
			return "", err
		}
		if gone {
			continue
		}

		holder, err := repo.FindBySlug(ctx, candidate)
		if err != nil {
			return "", err
		}
		if holder == nil || s.acc.ID(holder) == selfID {
			return candidate, nil
		}
	}
	return "", apperr.Constraint("slug", "could not derive a unique slug")
}

type storedUpload struct {
	field resource.FileField
	urls  []string
}

type storedUploads []storedUpload

func (u storedUploads) urls() []string {
	var out []string
	for _, up := range u {
		out = append(out, up.urls...)
	}
	return out
}

// storeUploads saves every file before the record is written. On error,
// files saved so far are removed again.
func (s *resourceService[M]) storeUploads(ctx context.Context, uploads Uploads) (storedUploads, error) {
	for form, files := range uploads {
		if len(files) == 0 {
			continue
		}
		field, ok := s.def.FileField(form)
		if !ok {
			return nil, apperr.InvalidField(form, "unexpected file field")
		}
		if !field.Multiple && len(files) > 1 {
			return nil, apperr.InvalidField(form, "only one file is allowed")
		}
	}

	var out storedUploads
	for _, field := range s.def.Files {
		files := uploads[field.FormField]
		if len(files) == 0 {
			continue
		}
		if s.deps.Storage == nil {
			return nil, apperr.Store(errors.New("file storage is not configured"))
		}

		up := storedUpload{field: field}
		for _, fh := range files {
			saved, err := s.deps.Storage.Save(ctx, field.Folder, field.FormField, fh)
			if err != nil {
				s.removeFiles(ctx, append(out.urls(), up.urls...))
				return nil, err
			}
			up.urls = append(up.urls, saved.URL)
		}
		out = append(out, up)
	}
	return out, nil
}

func (s *resourceService[M]) fileURLs(m *M) []string {
	var out []string
	for _, f := range s.def.Files {
		if f.Multiple {
			out = append(out, s.acc.Strings(m, f.Column)...)
		} else if u := s.acc.String(m, f.Column); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// droppedFiles lists URLs referenced before an update and not after it.
func (s *resourceService[M]) droppedFiles(before, after *M) []string {
	kept := map[string]bool{}
	for _, u := range s.fileURLs(after) {
		kept[u] = true
	}
	var out []string
	for _, u := range s.fileURLs(before) {
		if !kept[u] {
			out = append(out, u)
		}
	}
	return out
}

// removeFiles deletes stored files. Failures are logged and otherwise ignored.
func (s *resourceService[M]) removeFiles(ctx context.Context, urls []string) {
	if s.deps.Storage == nil {
		return
	}
	for _, u := range urls {
		if err := s.deps.Storage.Delete(ctx, u); err != nil {
			s.deps.Logger.Warn("ResourceService", "Failed to remove file", map[string]interface{}{
				"resource": s.def.Path,
				"url":      u,
				"error":    err.Error(),
			})
		}
	}
}

func (s *resourceService[M]) afterWrite(ctx context.Context, action string, m *M) {
	if s.deps.Cache != nil {
		if err := s.deps.Cache.InvalidatePrefix(ctx, s.def.CacheKey()); err != nil {
			s.deps.Logger.Warn("ResourceService", "Cache invalidation failed", map[string]interface{}{"resource": s.def.Path, "error": err.Error()})
		}
	}

	if s.deps.Publisher != nil {
		evt := events.NewContentEvent(s.def.Path, action, s.acc.ID(m), m)
		if err := s.deps.Publisher.Publish(ctx, evt); err != nil {
			s.deps.Logger.Warn("ResourceService", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
		}
	}
}

func toStrings(v interface{}) []string {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}

	// Named slice types such as datatypes.JSONSlice[string].
	if raw, err := json.Marshal(v); err == nil {
		var out []string
		if json.Unmarshal(raw, &out) == nil {
			return out
		}
	}
	return nil
}

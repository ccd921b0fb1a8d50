package portfolio

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"brightfuture/internal/mirror"
)

type fakeMirror struct {
	snapshots map[string][]byte
}

func newFakeMirror() *fakeMirror {
	return &fakeMirror{snapshots: make(map[string][]byte)}
}

func (m *fakeMirror) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.snapshots[key] = raw
	return nil
}

func (m *fakeMirror) Get(ctx context.Context, key string, dest any) error {
	raw, ok := m.snapshots[key]
	if !ok {
		return mirror.ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func sampleProjects() []Project {
	return []Project{
		{ID: "project-1", Title: "가평 펜션 야외 공간", Category: CategoryPension, Tags: []string{"정자", "데크"}, Highlighted: true},
		{ID: "project-2", Title: "서울 카페 테라스", Category: CategoryCafe, Tags: []string{"파고라"}, Highlighted: true},
		{ID: "project-3", Title: "양양 캠핑장 공용 공간", Category: CategoryCamping, Tags: []string{"화로대", "데크"}},
	}
}

func writePortfolioSeed(t *testing.T, projects []Project) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	raw, err := json.Marshal(map[string]any{"projects": projects})
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestLoadPrefersMirrorOverSeed(t *testing.T) {
	m := newFakeMirror()
	m.Put(context.Background(), mirror.KeyPortfolio, sampleProjects())

	svc := NewService(NewStore(), m)
	err := svc.Load(context.Background(), writePortfolioSeed(t, []Project{{ID: "project-9", Title: "다른 프로젝트", Category: CategoryCafe}}))

	assert.NoError(t, err)
	assert.Len(t, svc.List("", "", ""), 3)
}

func TestLoadFallsBackToSeed(t *testing.T) {
	svc := NewService(NewStore(), newFakeMirror())

	err := svc.Load(context.Background(), writePortfolioSeed(t, sampleProjects()))

	assert.NoError(t, err)
	assert.Len(t, svc.List("", "", ""), 3)
}

func TestLoadMissingSeedStartsEmpty(t *testing.T) {
	svc := NewService(NewStore(), newFakeMirror())

	err := svc.Load(context.Background(), filepath.Join(t.TempDir(), "portfolio.json"))

	assert.NoError(t, err)
	assert.Empty(t, svc.List("", "", ""))
}

func TestListFilters(t *testing.T) {
	svc := NewService(NewStore(), newFakeMirror())
	assert.NoError(t, svc.Load(context.Background(), writePortfolioSeed(t, sampleProjects())))

	assert.Len(t, svc.List(CategoryPension, "", ""), 1)
	assert.Len(t, svc.List("", "데크", ""), 2)
	assert.Len(t, svc.List("", "", "카페"), 1)
	assert.Len(t, svc.List(CategoryCamping, "데크", ""), 1)
}

func TestHighlightedKeepsOriginalOrder(t *testing.T) {
	svc := NewService(NewStore(), newFakeMirror())
	assert.NoError(t, svc.Load(context.Background(), writePortfolioSeed(t, sampleProjects())))

	highlighted := svc.Highlighted()

	assert.Len(t, highlighted, 2)
	assert.Equal(t, "project-1", highlighted[0].ID)
	assert.Equal(t, "project-2", highlighted[1].ID)
}

func TestCreateAssignsTimestampID(t *testing.T) {
	svc := NewService(NewStore(), newFakeMirror())

	p, err := svc.Create(context.Background(), &CreateProjectRequest{
		Title:    "용인 전원주택 마당",
		Category: "pension",
	})

	assert.NoError(t, err)
	assert.Contains(t, p.ID, "project-")
	assert.NotEmpty(t, p.CreatedAt)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewService(NewStore(), newFakeMirror())

	_, err := svc.Create(context.Background(), &CreateProjectRequest{
		Title:    "용인 전원주택 마당",
		Category: "villa",
	})

	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestDeleteSyncsMirror(t *testing.T) {
	m := newFakeMirror()
	svc := NewService(NewStore(), m)
	assert.NoError(t, svc.Load(context.Background(), writePortfolioSeed(t, sampleProjects())))

	assert.NoError(t, svc.Delete(context.Background(), "project-1"))

	var cached []Project
	assert.NoError(t, m.Get(context.Background(), mirror.KeyPortfolio, &cached))
	assert.Len(t, cached, 2)
}

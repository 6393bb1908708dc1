package seeder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/kavita-backend/internal/adapter/static"
	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// mockRepo stores rows by slug, like the real Ensure* upserts.
type mockRepo struct {
	mu sync.Mutex

	authors    map[string]uuid.UUID
	categories map[string]uuid.UUID
	poems      map[string]domain.Poem

	ensurePoemErr error
	callLog       []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		authors:    make(map[string]uuid.UUID),
		categories: make(map[string]uuid.UUID),
		poems:      make(map[string]domain.Poem),
	}
}

func (m *mockRepo) EnsureAuthor(_ context.Context, a *domain.Author) (uuid.UUID, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = append(m.callLog, "EnsureAuthor")
	if id, ok := m.authors[a.Slug]; ok {
		return id, false, nil
	}
	m.authors[a.Slug] = a.ID
	return a.ID, true, nil
}

func (m *mockRepo) EnsureCategory(_ context.Context, c *domain.Category) (uuid.UUID, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = append(m.callLog, "EnsureCategory")
	if id, ok := m.categories[c.Slug]; ok {
		return id, false, nil
	}
	m.categories[c.Slug] = c.ID
	return c.ID, true, nil
}

func (m *mockRepo) EnsurePoem(_ context.Context, p *domain.Poem) (uuid.UUID, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = append(m.callLog, "EnsurePoem")
	if m.ensurePoemErr != nil {
		return uuid.Nil, false, m.ensurePoemErr
	}
	if existing, ok := m.poems[p.Slug]; ok {
		return existing.ID, false, nil
	}
	m.poems[p.Slug] = *p
	return p.ID, true, nil
}

type mockTx struct {
	calls int
}

func (m *mockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFixture(t *testing.T, poems int) *static.Fixture {
	t.Helper()
	author := domain.Author{ID: uuid.New(), Name: "Ashutosh Dubey", Slug: "ashutosh-dubey"}
	category := domain.Category{ID: uuid.New(), Name: "प्रेम", NameEn: "Love", Slug: "prem"}
	fx := &static.Fixture{
		Authors:    []domain.Author{author},
		Categories: []domain.Category{category},
	}
	for i := range poems {
		fx.Poems = append(fx.Poems, domain.Poem{
			ID:         uuid.New(),
			Title:      "कविता",
			Slug:       "kavita-" + string(rune('a'+i)),
			Content:    "कल रात",
			AuthorID:   author.ID,
			CategoryID: &category.ID,
		})
	}
	return fx
}

func TestPipeline_Run_SeedsInOrder(t *testing.T) {
	t.Parallel()

	repo := newMockRepo()
	tx := &mockTx{}
	p := NewPipeline(testLogger(), repo, tx, Config{BatchSize: 2})

	require.NoError(t, p.Run(context.Background(), testFixture(t, 5)))

	assert.False(t, p.HasErrors())
	results := p.Results()
	assert.Equal(t, 1, results["authors"].Inserted)
	assert.Equal(t, 1, results["categories"].Inserted)
	assert.Equal(t, 5, results["poems"].Inserted)

	assert.Equal(t, "EnsureAuthor", repo.callLog[0])
	assert.Equal(t, "EnsureCategory", repo.callLog[1])
	// one tx per lookup phase plus ceil(5/2) poem batches
	assert.Equal(t, 5, tx.calls)
}

func TestPipeline_Run_Idempotent(t *testing.T) {
	t.Parallel()

	repo := newMockRepo()
	fx := testFixture(t, 3)

	first := NewPipeline(testLogger(), repo, &mockTx{}, Config{})
	require.NoError(t, first.Run(context.Background(), fx))

	second := NewPipeline(testLogger(), repo, &mockTx{}, Config{})
	require.NoError(t, second.Run(context.Background(), fx))

	for _, phase := range allPhases {
		assert.Zero(t, second.Results()[phase].Inserted, phase)
	}
	assert.Equal(t, 3, second.Results()["poems"].Skipped)
	assert.Len(t, repo.poems, 3)
}

func TestPipeline_Run_RemapsExistingIDs(t *testing.T) {
	t.Parallel()

	repo := newMockRepo()
	storedAuthor := uuid.New()
	storedCategory := uuid.New()
	repo.authors["ashutosh-dubey"] = storedAuthor
	repo.categories["prem"] = storedCategory

	p := NewPipeline(testLogger(), repo, &mockTx{}, Config{})
	require.NoError(t, p.Run(context.Background(), testFixture(t, 1)))

	poem := repo.poems["kavita-a"]
	assert.Equal(t, storedAuthor, poem.AuthorID)
	require.NotNil(t, poem.CategoryID)
	assert.Equal(t, storedCategory, *poem.CategoryID)
}

func TestPipeline_Run_DryRun(t *testing.T) {
	t.Parallel()

	repo := newMockRepo()
	tx := &mockTx{}
	p := NewPipeline(testLogger(), repo, tx, Config{DryRun: true})

	require.NoError(t, p.Run(context.Background(), testFixture(t, 2)))

	assert.Empty(t, repo.callLog)
	assert.Zero(t, tx.calls)
	assert.Equal(t, 2, p.Results()["poems"].Skipped)
}

func TestPipeline_Run_StopsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("constraint violated")
	repo := newMockRepo()
	repo.ensurePoemErr = boom
	p := NewPipeline(testLogger(), repo, &mockTx{}, Config{})

	err := p.Run(context.Background(), testFixture(t, 2))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "phase poems")
	assert.Contains(t, err.Error(), "kavita-a")
	assert.True(t, p.HasErrors())
	assert.Equal(t, 1, p.Results()["authors"].Inserted)
}

func TestBatchProcess(t *testing.T) {
	t.Parallel()

	var sizes []int
	total, err := batchProcess([]int{1, 2, 3, 4, 5}, 2, func(batch []int) (int, error) {
		sizes = append(sizes, len(batch))
		return len(batch), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, []int{2, 2, 1}, sizes)

	total, err = batchProcess([]int{}, 2, func([]int) (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestPipeline_Run_DefaultFixture(t *testing.T) {
	t.Parallel()

	fx, err := static.DefaultFixture()
	require.NoError(t, err)

	repo := newMockRepo()
	p := NewPipeline(testLogger(), repo, &mockTx{}, Config{})
	require.NoError(t, p.Run(context.Background(), fx))

	assert.Len(t, repo.poems, len(fx.Poems))
}

package recommendation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"eduintel/business/catalog"
	"eduintel/business/engine"
	"eduintel/domain"
	"eduintel/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeStudents struct {
	nextID  uint
	created []domain.Student
	err     error
}

func (f *fakeStudents) Create(ctx context.Context, s *domain.Student) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	s.ID = f.nextID
	f.created = append(f.created, *s)
	return nil
}

type staticCatalog struct {
	catalog engine.Catalog
	err     error
}

func (c staticCatalog) Snapshot(ctx context.Context) (engine.Catalog, error) {
	return c.catalog, c.err
}

type recordingGateway struct {
	mu    sync.Mutex
	calls [][]domain.Recommendation
	err   error
}

func (g *recordingGateway) SaveRecommendations(ctx context.Context, records []domain.Recommendation) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, append([]domain.Recommendation(nil), records...))
	return g.err
}

func seedCatalog() engine.Catalog {
	seed := catalog.SeedUniversities()
	for i := range seed {
		seed[i].ID = uint(i + 1)
	}
	return engine.Catalog(seed)
}

func profile() *domain.Student {
	return &domain.Student{
		Name:       "Asha",
		CGPA:       9.0,
		IELTS:      7.5,
		Budget:     40000,
		Country:    "Canada",
		Field:      "Computer Science",
		CareerGoal: "ML engineer",
	}
}

func TestRecommend_PersistsStudentAndRecords(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	students := &fakeStudents{nextID: 6}
	gateway := &recordingGateway{}
	svc := NewService(students, staticCatalog{catalog: seedCatalog()}, gateway)

	student := profile()
	results, err := svc.Recommend(WithTraceID(context.Background(), "trace-1"), student)
	require.NoError(t, err)

	require.Len(t, results, engine.DefaultLimit)
	assert.Equal(t, uint(7), student.ID)
	require.Len(t, students.created, 1)

	require.Len(t, gateway.calls, 1)
	records := gateway.calls[0]
	require.Len(t, records, engine.DefaultLimit)
	for i, rec := range records {
		assert.Equal(t, uint(7), rec.StudentID)
		assert.Equal(t, results[i].ROIScore, rec.ROIScore)
		assert.Equal(t, i+1, results[i].ID)
	}

	want := engine.Generate(*student, seedCatalog())
	assert.Equal(t, want.Results, results)
}

func TestRecommend_GatewayFailureKeepsResults(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	ok := NewService(&fakeStudents{}, staticCatalog{catalog: seedCatalog()}, &recordingGateway{})
	failing := NewService(&fakeStudents{}, staticCatalog{catalog: seedCatalog()}, &recordingGateway{err: errors.New("disk full")})

	before := testutil.ToFloat64(PersistenceFailuresTotal)

	want, err := ok.Recommend(context.Background(), profile())
	require.NoError(t, err)
	got, err := failing.Recommend(context.Background(), profile())
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, before+1, testutil.ToFloat64(PersistenceFailuresTotal))
}

func TestRecommend_EmptyCatalogSkipsGateway(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	gateway := &recordingGateway{}
	svc := NewService(&fakeStudents{}, staticCatalog{}, gateway)

	results, err := svc.Recommend(context.Background(), profile())
	require.NoError(t, err)

	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Empty(t, gateway.calls)
}

func TestRecommend_Errors(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	t.Run("student store fails", func(t *testing.T) {
		gateway := &recordingGateway{}
		svc := NewService(&fakeStudents{err: errors.New("insert failed")}, staticCatalog{catalog: seedCatalog()}, gateway)

		_, err := svc.Recommend(context.Background(), profile())
		assert.EqualError(t, err, "insert failed")
		assert.Empty(t, gateway.calls)
	})

	t.Run("catalog fails", func(t *testing.T) {
		svc := NewService(&fakeStudents{}, staticCatalog{err: errors.New("db down")}, &recordingGateway{})

		_, err := svc.Recommend(context.Background(), profile())
		assert.EqualError(t, err, "db down")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		students := &fakeStudents{}
		svc := NewService(students, staticCatalog{catalog: seedCatalog()}, nil)

		_, err := svc.Recommend(ctx, profile())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, students.created)
	})
}

func TestRecommend_NilGateway(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	svc := NewService(&fakeStudents{}, staticCatalog{catalog: seedCatalog()}, nil)
	results, err := svc.Recommend(context.Background(), profile())
	require.NoError(t, err)
	assert.Len(t, results, engine.DefaultLimit)
}

func TestExplain_DoesNotPersist(t *testing.T) {
	students := &fakeStudents{}
	gateway := &recordingGateway{}
	svc := NewService(students, staticCatalog{catalog: seedCatalog()}, gateway)

	explained, err := svc.Explain(context.Background(), *profile())
	require.NoError(t, err)

	assert.Len(t, explained, 15)
	assert.Empty(t, students.created)
	assert.Empty(t, gateway.calls)
}

func TestFanOut(t *testing.T) {
	a := &recordingGateway{}
	b := &recordingGateway{err: errors.New("archive down")}
	c := &recordingGateway{}
	records := []domain.Recommendation{{StudentID: 1, UniversityID: 2}}

	err := FanOut{a, nil, b, c}.SaveRecommendations(context.Background(), records)

	assert.EqualError(t, err, "archive down")
	assert.Len(t, a.calls, 1)
	assert.Len(t, c.calls, 1, "a failing gateway must not stop the rest")

	assert.NoError(t, FanOut{a}.SaveRecommendations(context.Background(), records))
}

package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"eduintel/domain"
	"eduintel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const feedBody = `[
  {"name": "TU Delft", "country": "Netherlands", "program": "MSc Computer Science", "avg_salary": 68000,
   "tuition": 18000, "visa_rate": 0.79, "acceptance_rate": 0.7, "employment_rate": 0.85, "risk_index": 0.21,
   "ielts_requirement": 6.5, "cgpa_requirement": 7.5, "ranking": 47, "scholarship_available": true},
  {"name": "KTH Royal Institute of Technology", "country": "Sweden", "program": "MSc Machine Learning",
   "avg_salary": 64000, "tuition": 16000, "visa_rate": 0.83, "acceptance_rate": 0.6, "employment_rate": 0.88,
   "risk_index": 0.17, "ielts_requirement": 6.5, "cgpa_requirement": 8, "ranking": 73}
]`

type fakeSource struct {
	records []Record
	err     error
}

func (f fakeSource) Name() string { return "fake" }

func (f fakeSource) Fetch(ctx context.Context) ([]Record, error) {
	return f.records, f.err
}

type fakeWriter struct {
	got []domain.University
	err error
}

func (f *fakeWriter) Upsert(ctx context.Context, universities []domain.University) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.got = append(f.got, universities...)
	return len(universities), nil
}

type fakeRuns struct {
	runs     []domain.CatalogIngestRun
	gotLimit int
	err      error
}

func (f *fakeRuns) Create(ctx context.Context, run *domain.CatalogIngestRun) error {
	run.ID = uint(len(f.runs) + 1)
	f.runs = append(f.runs, *run)
	return nil
}

func (f *fakeRuns) Latest(ctx context.Context, limit int) ([]domain.CatalogIngestRun, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.CatalogIngestRun, 0, limit)
	for i := len(f.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.runs[i])
	}
	return out, nil
}

type fakeArchive struct {
	source string
	count  int
}

func (f *fakeArchive) ArchiveScrape(ctx context.Context, source string, universities []domain.University) error {
	f.source = source
	f.count = len(universities)
	return nil
}

func fastSource(url string, threshold uint32) *HTTPSource {
	return NewHTTPSource(HTTPSourceConfig{
		URL:               url,
		RequestsPerSecond: 1000,
		FailureThreshold:  threshold,
		BreakerTimeout:    time.Minute,
		FetchTimeout:      2 * time.Second,
	}, nil)
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, feedBody)
	}))
	defer srv.Close()

	records, err := fastSource(srv.URL, 3).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "TU Delft", records[0].Name)
	assert.Equal(t, 47, records[0].Ranking)
	assert.True(t, records[0].ScholarshipAvailable)
	assert.False(t, records[1].ScholarshipAvailable)
}

func TestHTTPSource_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"universities": %s}`, feedBody)
	}))
	defer srv.Close()

	records, err := fastSource(srv.URL, 3).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHTTPSource_EmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	_, err := fastSource(srv.URL, 3).Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

func TestHTTPSource_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	src := fastSource(srv.URL, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := src.Fetch(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSourceUnavailable)
	}

	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the feed")
}

func TestHTTPSource_CancelledWhileWaiting(t *testing.T) {
	src := NewHTTPSource(HTTPSourceConfig{URL: "http://127.0.0.1:0", RequestsPerSecond: 0.001}, nil)
	src.limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := src.Fetch(ctx)
	assert.ErrorContains(t, err, "rate limiter")
}

func TestRun_UsesFeed(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	records, err := decodeFeed([]byte(feedBody))
	require.NoError(t, err)

	writer := &fakeWriter{}
	runs := &fakeRuns{}
	archive := &fakeArchive{}
	svc := NewService(fakeSource{records: records}, writer, runs, archive)

	run, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fake", run.Source)
	assert.False(t, run.UsedSeed)
	assert.Equal(t, 2, run.Fetched)
	assert.Equal(t, 2, run.Upserted)
	assert.Zero(t, run.Rejected)
	assert.Nil(t, run.Rejections)
	assert.Len(t, writer.got, 2)
	require.Len(t, runs.runs, 1)
	assert.Equal(t, "fake", archive.source)
	assert.Equal(t, 2, archive.count)
}

func TestRun_FallsBackToSeed(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	tests := []struct {
		name   string
		source Source
	}{
		{name: "no source configured"},
		{name: "source down", source: fakeSource{err: domain.ErrSourceUnavailable}},
		{name: "source empty", source: fakeSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &fakeWriter{}
			archive := &fakeArchive{}
			run, err := NewService(tt.source, writer, nil, archive).Run(context.Background())
			require.NoError(t, err)

			assert.True(t, run.UsedSeed)
			assert.Equal(t, "seed", run.Source)
			assert.Equal(t, 15, run.Fetched)
			assert.Equal(t, 15, run.Upserted)
			assert.Equal(t, "University of Toronto", writer.got[0].Name)
			assert.Zero(t, archive.count, "seed data is not archived")
		})
	}
}

func TestRun_RejectsInvalidAndDuplicateRecords(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	good := Record{Name: "TU Delft", Country: "Netherlands", Program: "MSc CS", AvgSalary: 68000, Tuition: 18000,
		VisaRate: 0.79, AcceptanceRate: 0.7, EmploymentRate: 0.85, RiskIndex: 0.21, IELTSRequirement: 6.5, CGPARequirement: 7.5,
		Ranking: 47}
	badRate := good
	badRate.Name = "Bad Rate"
	badRate.VisaRate = 1.4
	negative := good
	negative.Name = "Negative Tuition"
	negative.Tuition = -1
	unnamed := good
	unnamed.Name = "  "
	unranked := good
	unranked.Name = "Unranked"
	unranked.Ranking = 0
	unpaid := good
	unpaid.Name = "No Salary"
	unpaid.AvgSalary = 0

	writer := &fakeWriter{}
	run, err := NewService(fakeSource{records: []Record{good, badRate, negative, good, unnamed, unranked, unpaid}}, writer, nil, nil).
		Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, run.Fetched)
	assert.Equal(t, 1, run.Upserted)
	assert.Equal(t, 6, run.Rejected)
	assert.Contains(t, run.Rejections, "Bad Rate")
	assert.Contains(t, run.Rejections, "Negative Tuition")
	assert.Contains(t, run.Rejections, "TU Delft (record 4)")
	assert.Contains(t, run.Rejections, "record 5")
	assert.Contains(t, run.Rejections, "Unranked")
	assert.Contains(t, run.Rejections, "No Salary")
	assert.Contains(t, run.Rejections["Bad Rate"], domain.ErrInvalidUniversity.Error())
}

func TestRun_UpsertFailureIsRecorded(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	runs := &fakeRuns{}
	_, err := NewService(nil, &fakeWriter{err: errors.New("db down")}, runs, nil).Run(context.Background())

	assert.EqualError(t, err, "db down")
	require.Len(t, runs.runs, 1)
	assert.Zero(t, runs.runs[0].Upserted)
}

func TestRecentRuns(t *testing.T) {
	logger.SetForTest(zaptest.NewLogger(t))

	runs := &fakeRuns{}
	svc := NewService(nil, &fakeWriter{}, runs, nil)
	for i := 0; i < 3; i++ {
		_, err := svc.Run(context.Background())
		require.NoError(t, err)
	}

	got, err := svc.RecentRuns(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "unset", limit: 0, want: 20},
		{name: "negative", limit: -4, want: 20},
		{name: "too large", limit: 500, want: 20},
		{name: "upper bound", limit: 100, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecentRuns(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, runs.gotLimit)
		})
	}
}

func TestRecentRuns_WithoutHistory(t *testing.T) {
	got, err := NewService(nil, &fakeWriter{}, nil, nil).RecentRuns(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = NewService(nil, &fakeWriter{}, &fakeRuns{err: errors.New("db down")}, nil).
		RecentRuns(context.Background(), 5)
	assert.EqualError(t, err, "db down")
}

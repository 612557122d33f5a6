package mongo

import (
	"context"
	"testing"
	"time"

	"eduintel/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToBatch(t *testing.T) {
	at := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	records := []domain.Recommendation{
		{StudentID: 8, UniversityID: 5, ROIScore: 100, RiskLevel: domain.RiskLow},
		{StudentID: 8, UniversityID: 6, ROIScore: 97.1, RiskLevel: domain.RiskMedium},
	}

	batch := toBatch(records, at)

	assert.Equal(t, uint(8), batch.StudentID)
	assert.Equal(t, at, batch.GeneratedAt)
	require.Len(t, batch.Items, 2)
	assert.Equal(t, 1, batch.Items[0].Rank)
	assert.Equal(t, 2, batch.Items[1].Rank)
	assert.Equal(t, "Medium", batch.Items[1].RiskLevel)

	raw, err := bson.Marshal(batch)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.NotContains(t, doc, "_id")
	assert.Contains(t, doc, "student_id")
	assert.Contains(t, doc, "items")
}

func TestToScraped(t *testing.T) {
	at := time.Now().UTC()
	docs := toScraped("feed", []domain.University{
		{Name: "TU Delft", Country: "Netherlands", Program: "MSc Computer Science", Tuition: 18000, Ranking: 47},
	}, at)

	require.Len(t, docs, 1)
	doc, ok := docs[0].(scrapedUniversity)
	require.True(t, ok)
	assert.Equal(t, "feed", doc.Source)
	assert.Equal(t, "TU Delft", doc.Name)
	assert.Equal(t, 47, doc.Ranking)
}

func TestArchiveRepository_EmptyInputIsNoop(t *testing.T) {
	repo := NewArchiveRepository(nil)

	assert.NoError(t, repo.SaveRecommendations(context.Background(), nil))
	assert.NoError(t, repo.ArchiveScrape(context.Background(), "seed", nil))
}

func TestArchiveRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewArchiveRepository(nil)

	assert.ErrorIs(t, repo.SaveRecommendations(ctx, []domain.Recommendation{{}}), context.Canceled)
	assert.ErrorIs(t, repo.ArchiveScrape(ctx, "seed", []domain.University{{}}), context.Canceled)
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"eduintel/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	recommendationCollection = "recommendation_batches"
	scrapeCollection         = "scraped_universities"
)

type recommendationItem struct {
	UniversityID          uint    `bson:"university_id"`
	Rank                  int     `bson:"rank"`
	ROIScore              float64 `bson:"roi_score"`
	AcceptanceProbability float64 `bson:"acceptance_probability"`
	Employability         float64 `bson:"employability"`
	VisaSuccess           float64 `bson:"visa_success"`
	AIConfidence          float64 `bson:"ai_confidence"`
	RiskLevel             string  `bson:"risk_level"`
}

type recommendationBatch struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	StudentID   uint                 `bson:"student_id"`
	GeneratedAt time.Time            `bson:"generated_at"`
	Items       []recommendationItem `bson:"items"`
}

type scrapedUniversity struct {
	Source    string    `bson:"source"`
	Name      string    `bson:"name"`
	Country   string    `bson:"country"`
	Program   string    `bson:"program"`
	Tuition   float64   `bson:"tuition"`
	Ranking   int       `bson:"ranking"`
	ScrapedAt time.Time `bson:"scraped_at"`
}

// ArchiveRepository keeps document copies of generated shortlists and raw
// feed snapshots.
type ArchiveRepository struct {
	DB  *mongo.Database
	now func() time.Time
}

func NewArchiveRepository(db *mongo.Database) *ArchiveRepository {
	return &ArchiveRepository{
		DB:  db,
		now: time.Now,
	}
}

func (r *ArchiveRepository) SaveRecommendations(ctx context.Context, records []domain.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	doc := toBatch(records, r.now().UTC())
	if _, err := r.DB.Collection(recommendationCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to archive recommendations: %w", err)
	}

	return nil
}

func (r *ArchiveRepository) ArchiveScrape(ctx context.Context, source string, universities []domain.University) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(universities) == 0 {
		return nil
	}

	docs := toScraped(source, universities, r.now().UTC())
	if _, err := r.DB.Collection(scrapeCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to archive scraped universities: %w", err)
	}

	return nil
}

// toBatch groups one shortlist under its student. Records arrive in rank
// order.
func toBatch(records []domain.Recommendation, at time.Time) recommendationBatch {
	batch := recommendationBatch{
		StudentID:   records[0].StudentID,
		GeneratedAt: at,
		Items:       make([]recommendationItem, 0, len(records)),
	}
	for i, rec := range records {
		batch.Items = append(batch.Items, recommendationItem{
			UniversityID:          rec.UniversityID,
			Rank:                  i + 1,
			ROIScore:              rec.ROIScore,
			AcceptanceProbability: rec.AcceptanceProbability,
			Employability:         rec.Employability,
			VisaSuccess:           rec.VisaSuccess,
			AIConfidence:          rec.AIConfidence,
			RiskLevel:             string(rec.RiskLevel),
		})
	}
	return batch
}

func toScraped(source string, universities []domain.University, at time.Time) []interface{} {
	docs := make([]interface{}, 0, len(universities))
	for _, u := range universities {
		docs = append(docs, scrapedUniversity{
			Source:    source,
			Name:      u.Name,
			Country:   u.Country,
			Program:   u.Program,
			Tuition:   u.Tuition,
			Ranking:   u.Ranking,
			ScrapedAt: at,
		})
	}
	return docs
}

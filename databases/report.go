package databases

// go generate: mockery --name ReportDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brigadapm/ocorrencias-api/models"
	"github.com/brigadapm/ocorrencias-api/ocorrencia"
)

const reportCollection = "reports"

// ReportDatabase contains the methods to use with the report collection
type ReportDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Report, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Report, error)
	InsertOne(ctx context.Context, report models.Report) error
	ReplaceFields(ctx context.Context, filter interface{}, update interface{}) (int64, error)
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

func (r *reportDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Report, error) {
	report := &models.Report{}
	err := r.db.Collection(reportCollection).FindOne(ctx, filter).Decode(report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Report, error) {
	reports := []models.Report{}
	err := r.db.Collection(reportCollection).Find(ctx, filter, opts...).Decode(&reports)
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportDatabase) InsertOne(ctx context.Context, report models.Report) error {
	_, err := r.db.Collection(reportCollection).InsertOne(ctx, report)
	return err
}

// ReplaceFields applies a $set style update and returns the matched count
// so callers can distinguish a missing report from a no-op write.
func (r *reportDatabase) ReplaceFields(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	res, err := r.db.Collection(reportCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *reportDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	return r.db.Collection(reportCollection).DeleteOne(ctx, filter)
}

func (r *reportDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return r.db.Collection(reportCollection).DeleteMany(ctx, filter)
}

// PurgeExpired deletes every report outside the reportable weekly
// categories whose dataHora is more than 24 hours old. Reportable
// occurrences are kept for the weekly summary.
func (r *reportDatabase) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-24 * time.Hour)
	return r.DeleteMany(ctx, bson.M{
		"fato":     bson.M{"$nin": ocorrencia.WeeklyFacts},
		"dataHora": bson.M{"$lt": cutoff},
	})
}

// Package postgres loads generated datasets into Postgres for downstream
// analysis.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"healthsynth/domain/health"
	"healthsynth/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS health_records (
	id BIGSERIAL PRIMARY KEY,
	age INTEGER NOT NULL,
	gender TEXT NOT NULL,
	bmi NUMERIC(4,1) NOT NULL,
	bmi_category TEXT NOT NULL,
	waist_circumference NUMERIC(4,1) NOT NULL,
	fbg INTEGER NOT NULL,
	triglyceride INTEGER NOT NULL,
	hdl INTEGER NOT NULL,
	high_blood_pressure BOOLEAN NOT NULL
)`

// Batch size for bulk inserts; 9 bound parameters per row keeps this well
// under the Postgres placeholder limit.
const insertBatchSize = 500

// recordRepository implements ports.RecordRepository on Postgres.
type recordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a record repository
func NewRecordRepository(db *sqlx.DB) ports.RecordRepository {
	return &recordRepository{db: db}
}

// Connect opens and pings a Postgres connection.
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the health_records table if missing
func (r *recordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create health_records schema: %w", err)
	}
	return nil
}

// BulkInsert loads records in batches inside a single transaction.
func (r *recordRepository) BulkInsert(ctx context.Context, records []health.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO health_records (
		age, gender, bmi, bmi_category, waist_circumference,
		fbg, triglyceride, hdl, high_blood_pressure
	) VALUES (
		:age, :gender, :bmi, :bmi_category, :waist_circumference,
		:fbg, :triglyceride, :hdl, :high_blood_pressure
	)`

	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := make([]map[string]interface{}, 0, end-start)
		for _, rec := range records[start:end] {
			batch = append(batch, map[string]interface{}{
				"age":                 rec.Age,
				"gender":              rec.Gender.String(),
				"bmi":                 rec.BMI,
				"bmi_category":        rec.BMICategory.String(),
				"waist_circumference": rec.WaistCircumference,
				"fbg":                 rec.FBG,
				"triglyceride":        rec.Triglyceride,
				"hdl":                 rec.HDL,
				"high_blood_pressure": rec.HighBloodPressure,
			})
		}
		if _, err := tx.NamedExecContext(ctx, query, batch); err != nil {
			return fmt.Errorf("failed to insert batch at row %d: %w", start, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bulk insert: %w", err)
	}
	return nil
}

// Count returns the number of stored records
func (r *recordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM health_records`); err != nil {
		return 0, fmt.Errorf("failed to count health_records: %w", err)
	}
	return count, nil
}

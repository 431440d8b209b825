package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"singmeasong/pkg/logging"
	"singmeasong/recommendation/configs"
	"singmeasong/recommendation/internal/repository"
	"singmeasong/recommendation/pkg/model"
)

const tracerID = "recommendation-repository-mysql"

// errDupEntry is the MySQL server error for a unique key violation.
const errDupEntry = 1062

const selectColumns = "SELECT id, name, youtube_link, score FROM recommendations"

// Repository defines a MySQL-based recommendation repository.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a new MySQL-based recommendation repository.
func New(config configs.MysqlConfig, logger *zap.Logger) (*Repository, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "mysql"),
	)
	dsn := mysql.NewConfig()
	dsn.User = config.User
	dsn.Passwd = config.Pass
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", config.Host, config.Port)
	dsn.DBName = config.Name
	logger.Info("Connecting to mysql", zap.String("addr", dsn.Addr), zap.String("db", dsn.DBName))
	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, logger), nil
}

// NewWithDB wraps an already opened database handle.
func NewWithDB(db *sql.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Close closes the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Create stores a new recommendation with a zero score.
func (r *Repository) Create(ctx context.Context, name string, youtubeLink string) (*model.Recommendation, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/Create")
	defer span.End()
	res, err := r.db.ExecContext(ctx, "INSERT INTO recommendations (name, youtube_link, score) VALUES (?, ?, 0)", name, youtubeLink)
	if isDuplicateEntry(err) {
		return nil, repository.ErrAlreadyExists
	} else if err != nil {
		r.logger.Warn("Failed to insert recommendation", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Recommendation{ID: model.RecommendationID(id), Name: name, YoutubeLink: youtubeLink}, nil
}

// Find retrieves a recommendation by id.
func (r *Repository) Find(ctx context.Context, id model.RecommendationID) (*model.Recommendation, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/Find")
	defer span.End()
	return r.scanOne(r.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
}

// FindByName retrieves a recommendation by its unique name.
func (r *Repository) FindByName(ctx context.Context, name string) (*model.Recommendation, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/FindByName")
	defer span.End()
	return r.scanOne(r.db.QueryRowContext(ctx, selectColumns+" WHERE name = ?", name))
}

// FindAll retrieves the recommendations matching filter, most recent first.
func (r *Repository) FindAll(ctx context.Context, filter *model.ScoreFilter) ([]*model.Recommendation, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/FindAll")
	defer span.End()
	where, args, err := whereClause(filter)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, selectColumns+where+" ORDER BY id DESC", args...)
	if err != nil {
		r.logger.Warn("Failed to list recommendations", zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

// Count returns the number of recommendations matching filter.
func (r *Repository) Count(ctx context.Context, filter *model.ScoreFilter) (int, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/Count")
	defer span.End()
	where, args, err := whereClause(filter)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recommendations"+where, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// UpdateScore adds delta to the score of a recommendation and returns the result.
// The increment and the re-read run in one transaction.
func (r *Repository) UpdateScore(ctx context.Context, id model.RecommendationID, delta int) (*model.Recommendation, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/UpdateScore")
	defer span.End()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE recommendations SET score = score + ? WHERE id = ?", delta, id)
	if err != nil {
		r.logger.Warn("Failed to update score", zap.Int64(logging.FieldID, int64(id)), zap.Error(err))
		return nil, err
	}
	// RowsAffected is 0 for a missing row; a zero delta is never sent.
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, repository.ErrNotFound
	}
	rec, err := r.scanOne(tx.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return rec, nil
}

// Remove deletes a recommendation.
func (r *Repository) Remove(ctx context.Context, id model.RecommendationID) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/Remove")
	defer span.End()
	res, err := r.db.ExecContext(ctx, "DELETE FROM recommendations WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// GetAmountByScore returns up to amount recommendations with the highest scores.
func (r *Repository) GetAmountByScore(ctx context.Context, amount int) ([]*model.Recommendation, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetAmountByScore")
	defer span.End()
	rows, err := r.db.QueryContext(ctx, selectColumns+" ORDER BY score DESC, id DESC LIMIT ?", amount)
	if err != nil {
		r.logger.Warn("Failed to list top recommendations", zap.Int("amount", amount), zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

// DeleteAll removes every recommendation and restarts the id sequence.
func (r *Repository) DeleteAll(ctx context.Context) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteAll")
	defer span.End()
	r.logger.Info("Truncating recommendations")
	_, err := r.db.ExecContext(ctx, "TRUNCATE TABLE recommendations")
	return err
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == errDupEntry
}

func whereClause(filter *model.ScoreFilter) (string, []any, error) {
	if filter == nil {
		return "", nil, nil
	}
	switch filter.Op {
	case model.ScoreOpGreaterThan:
		return " WHERE score > ?", []any{filter.Score}, nil
	case model.ScoreOpLessThanOrEqual:
		return " WHERE score <= ?", []any{filter.Score}, nil
	default:
		return "", nil, fmt.Errorf("unsupported score filter %q", filter.Op)
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanOne(row scanner) (*model.Recommendation, error) {
	var rec model.Recommendation
	if err := row.Scan(&rec.ID, &rec.Name, &rec.YoutubeLink, &rec.Score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		r.logger.Warn("Failed to scan recommendation", zap.Error(err))
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) scanAll(rows *sql.Rows) ([]*model.Recommendation, error) {
	defer rows.Close()
	var res []*model.Recommendation
	for rows.Next() {
		rec, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

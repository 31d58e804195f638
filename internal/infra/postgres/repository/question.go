package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/infra/postgres"
	"github.com/aliskhannn/trivia-api/internal/repository"
)

const questionColumns = `id, question, answer, category_id, difficulty`

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// QuestionRepository provides access to trivia questions in the database.
type QuestionRepository struct {
	db postgres.DBTX
	tx TxRunner
}

// NewQuestionRepository creates a new QuestionRepository.
// Writes that must be atomic run through tx.
func NewQuestionRepository(db postgres.DBTX, tx TxRunner) *QuestionRepository {
	return &QuestionRepository{db: db, tx: tx}
}

// List returns one page of questions ordered by ID.
func (r *QuestionRepository) List(ctx context.Context, limit, offset int) ([]entities.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return collectQuestions(rows)
}

// Count returns the total number of questions.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

// Search returns questions whose text contains term, case-insensitively.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]entities.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE question ILIKE $1 ESCAPE '\'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}

	return collectQuestions(rows)
}

// FindQuestions returns the questions matching filter ordered by ID.
func (r *QuestionRepository) FindQuestions(ctx context.Context, filter entities.QuestionFilter) ([]entities.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE ($1 = 0 OR category_id = $1)
		  AND NOT (id = ANY($2))
		ORDER BY id
	`

	exclude := filter.ExcludeIDs
	if exclude == nil {
		// A NULL array would make the ANY test NULL and drop every row.
		exclude = []int{}
	}

	rows, err := r.db.Query(ctx, query, filter.CategoryID, exclude)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	return collectQuestions(rows)
}

// GetByID retrieves a question by ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*entities.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	var q entities.Question
	err := r.db.QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.Question,
		&q.Answer,
		&q.CategoryID,
		&q.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return &q, nil
}

// Create inserts a question after locking its category row.
// Returns ErrCategoryNotFound when the category does not exist.
func (r *QuestionRepository) Create(ctx context.Context, nq entities.NewQuestion) (int, error) {
	var id int
	err := r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var categoryID int
		err := tx.QueryRow(ctx,
			`SELECT id FROM categories WHERE id = $1 FOR KEY SHARE`,
			nq.CategoryID,
		).Scan(&categoryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return repository.ErrCategoryNotFound
			}
			return fmt.Errorf("lock category: %w", err)
		}

		query := `
			INSERT INTO questions (question, answer, category_id, difficulty)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		err = tx.QueryRow(ctx, query, nq.Question, nq.Answer, categoryID, nq.Difficulty).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert question: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Delete removes a question by ID.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

func collectQuestions(rows pgx.Rows) ([]entities.Question, error) {
	defer rows.Close()

	var questions []entities.Question
	for rows.Next() {
		var q entities.Question
		err := rows.Scan(
			&q.ID,
			&q.Question,
			&q.Answer,
			&q.CategoryID,
			&q.Difficulty,
		)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

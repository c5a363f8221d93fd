package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

const uniqueViolation = "23505"

var userColumns = []string{
	"id", "email_phone", "password", "role", "name", "roll_number", "department", "photo_path",
	"semester_marks", "arrears", "notes_link", "subject_notes", "age", "blood_group",
	"parent_details", "chatbot_questions", "subjects", "created_at", "updated_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.EmailPhone, &u.Password, &u.Role, &u.Name, &u.RollNumber, &u.Department, &u.PhotoPath,
		&u.SemesterMarks, &u.Arrears, &u.NotesLink, &u.SubjectNotes, &u.Age, &u.BloodGroup,
		&u.ParentDetails, &u.ChatbotQuestions, &u.Subjects, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := psql.Insert("users").
		Columns("id", "email_phone", "password", "role", "name", "roll_number", "department", "photo_path", "created_at", "updated_at").
		Values(user.ID, user.EmailPhone, user.Password, user.Role, user.Name, user.RollNumber, user.Department, user.PhotoPath, user.CreatedAt, user.UpdatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) GetByIdentity(ctx context.Context, emailPhone string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email_phone": emailPhone})
}

// ListByRole returns users of role, newest first.
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	sql, args, err := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": role}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// update runs an UPDATE restricted to id and role and reports ErrNotFound
// when no row matched.
func (r *UserRepository) update(ctx context.Context, id uuid.UUID, role models.Role, set map[string]interface{}) error {
	sql, args, err := psql.Update("users").
		SetMap(set).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "role": role}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateStudentDetails(ctx context.Context, id uuid.UUID, d models.StudentDetails) error {
	return r.update(ctx, id, models.RoleStudent, map[string]interface{}{
		"name":           d.Name,
		"roll_number":    d.RollNumber,
		"department":     d.Department,
		"age":            d.Age,
		"blood_group":    d.BloodGroup,
		"parent_details": d.ParentDetails,
		"subjects":       d.Subjects,
	})
}

func (r *UserRepository) UpdateTeacherProfile(ctx context.Context, id uuid.UUID, p models.TeacherProfile) error {
	return r.update(ctx, id, models.RoleTeacher, map[string]interface{}{
		"name":        p.Name,
		"department":  p.Department,
		"age":         p.Age,
		"blood_group": p.BloodGroup,
	})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, role models.Role, hash string) error {
	return r.update(ctx, id, role, map[string]interface{}{"password": hash})
}

func (r *UserRepository) SetRecordField(ctx context.Context, id uuid.UUID, field models.RecordField, value *string) error {
	if !field.Valid() {
		return fmt.Errorf("unknown record field %q", field)
	}
	return r.update(ctx, id, models.RoleStudent, map[string]interface{}{string(field): value})
}

// ModifyRecordField reads field of a student row under a row lock, passes
// it to fn and stores the result in the same transaction.
func (r *UserRepository) ModifyRecordField(ctx context.Context, id uuid.UUID, field models.RecordField, fn func(current *string) (*string, error)) error {
	if !field.Valid() {
		return fmt.Errorf("unknown record field %q", field)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := psql.Select(string(field)).
			From("users").
			Where(squirrel.Eq{"id": id, "role": models.RoleStudent}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return err
		}

		var current *string
		if err := tx.QueryRow(ctx, sql, args...).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		sql, args, err = psql.Update("users").
			Set(string(field), next).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID, role models.Role) error {
	sql, args, err := psql.Delete("users").
		Where(squirrel.Eq{"id": id, "role": role}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.Info("User deleted", zap.String("user_id", id.String()), zap.String("role", string(role)))
	return nil
}

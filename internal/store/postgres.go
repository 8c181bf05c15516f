package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/lib/pq"
)

const (
	errUniqueViolation     pq.ErrorCode = "23505"
	errForeignKeyViolation pq.ErrorCode = "23503"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// every statement can run either standalone or inside WithinTx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type PostgresStore struct {
	db *sql.DB
	q  querier
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DB))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStore{db: db, q: db}, nil
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) WithinTx(ctx context.Context, fn func(tx DataStore) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&PostgresStore{db: s.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

const accountColumns = "id, handle, credential, is_local_speaker, created_at"

func scanAccount(row *sql.Row) (model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Handle, &a.Credential, &a.IsLocalSpeaker, &a.CreatedAt)
	return a, err
}

func (s *PostgresStore) InsertAccount(ctx context.Context, r AccountInsertRequest) (model.Account, error) {
	row := s.q.QueryRowContext(ctx,
		"INSERT INTO accounts (handle, credential, is_local_speaker) VALUES ($1, $2, $3) RETURNING "+accountColumns,
		r.Handle, r.Credential, r.IsLocalSpeaker)

	a, err := scanAccount(row)
	if err != nil {
		if isPqErr(err, errUniqueViolation) {
			return model.Account{}, ErrExists
		}

		return model.Account{}, fmt.Errorf("insert account: %w", err)
	}

	return a, nil
}

func (s *PostgresStore) GetAccount(ctx context.Context, id int64) (model.Account, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", id)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, ErrNotFound
		}

		return model.Account{}, fmt.Errorf("get account: %w", err)
	}

	return a, nil
}

func (s *PostgresStore) GetAccountByHandle(ctx context.Context, handle string) (model.Account, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE handle = $1", handle)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, ErrNotFound
		}

		return model.Account{}, fmt.Errorf("get account by handle: %w", err)
	}

	return a, nil
}

func (s *PostgresStore) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT "+accountColumns+" FROM accounts ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Handle, &a.Credential, &a.IsLocalSpeaker, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

func (s *PostgresStore) UpdateAccount(ctx context.Context, r AccountUpdateRequest) (model.Account, error) {
	row := s.q.QueryRowContext(ctx,
		`UPDATE accounts SET
			handle = COALESCE($2, handle),
			is_local_speaker = COALESCE($3, is_local_speaker)
		WHERE id = $1 RETURNING `+accountColumns,
		r.ID, r.Handle, r.IsLocalSpeaker)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, ErrNotFound
		}
		if isPqErr(err, errUniqueViolation) {
			return model.Account{}, ErrExists
		}

		return model.Account{}, fmt.Errorf("update account: %w", err)
	}

	return a, nil
}

// DeleteAccount removes the account; owned photos and words go with it via
// ON DELETE CASCADE.
func (s *PostgresStore) DeleteAccount(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	return requireAffected(res, "delete account")
}

const photoColumns = "id, title, COALESCE(description, ''), image_url, account_id, likes, created_at"

func scanPhoto(row *sql.Row) (model.Photo, error) {
	var p model.Photo
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.AccountID, &p.Likes, &p.CreatedAt)
	return p, err
}

func (s *PostgresStore) InsertPhoto(ctx context.Context, r PhotoInsertRequest) (model.Photo, error) {
	row := s.q.QueryRowContext(ctx,
		"INSERT INTO photos (title, description, image_url, account_id) VALUES ($1, $2, $3, $4) RETURNING "+photoColumns,
		r.Title, r.Description, r.ImageURL, r.AccountID)

	p, err := scanPhoto(row)
	if err != nil {
		if isPqErr(err, errForeignKeyViolation) {
			return model.Photo{}, ErrNotFound
		}

		return model.Photo{}, fmt.Errorf("insert photo: %w", err)
	}

	return p, nil
}

func (s *PostgresStore) GetPhoto(ctx context.Context, id int64) (model.Photo, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+photoColumns+" FROM photos WHERE id = $1", id)

	p, err := scanPhoto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Photo{}, ErrNotFound
		}

		return model.Photo{}, fmt.Errorf("get photo: %w", err)
	}

	return p, nil
}

func (s *PostgresStore) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	return s.queryPhotos(ctx, "SELECT "+photoColumns+" FROM photos ORDER BY created_at DESC, id DESC")
}

func (s *PostgresStore) TopPhotos(ctx context.Context, limit int) ([]model.Photo, error) {
	return s.queryPhotos(ctx, "SELECT "+photoColumns+" FROM photos ORDER BY likes DESC, id LIMIT $1", limit)
}

func (s *PostgresStore) queryPhotos(ctx context.Context, query string, args ...any) ([]model.Photo, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	photos := []model.Photo{}
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.AccountID, &p.Likes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}

	return photos, nil
}

func (s *PostgresStore) UpdatePhoto(ctx context.Context, r PhotoUpdateRequest) (model.Photo, error) {
	row := s.q.QueryRowContext(ctx,
		`UPDATE photos SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			account_id = COALESCE($5, account_id)
		WHERE id = $1 RETURNING `+photoColumns,
		r.ID, r.Title, r.Description, r.ImageURL, r.AccountID)

	p, err := scanPhoto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Photo{}, ErrNotFound
		}
		if isPqErr(err, errForeignKeyViolation) {
			return model.Photo{}, ErrNotFound
		}

		return model.Photo{}, fmt.Errorf("update photo: %w", err)
	}

	return p, nil
}

func (s *PostgresStore) DeletePhoto(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM photos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}

	return requireAffected(res, "delete photo")
}

// LikePhoto increments the like counter in a single statement so concurrent
// likes cannot lose updates.
func (s *PostgresStore) LikePhoto(ctx context.Context, id int64) (model.Photo, error) {
	row := s.q.QueryRowContext(ctx,
		"UPDATE photos SET likes = likes + 1 WHERE id = $1 RETURNING "+photoColumns, id)

	p, err := scanPhoto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Photo{}, ErrNotFound
		}

		return model.Photo{}, fmt.Errorf("like photo: %w", err)
	}

	return p, nil
}

const wordColumns = "id, original, COALESCE(translation, ''), description, account_id, likes, created_at"

func scanWord(row *sql.Row) (model.Word, error) {
	var w model.Word
	err := row.Scan(&w.ID, &w.Original, &w.Translation, &w.Description, &w.AccountID, &w.Likes, &w.CreatedAt)
	return w, err
}

func (s *PostgresStore) InsertWord(ctx context.Context, r WordInsertRequest) (model.Word, error) {
	row := s.q.QueryRowContext(ctx,
		"INSERT INTO words (original, translation, description, account_id) VALUES ($1, $2, $3, $4) RETURNING "+wordColumns,
		r.Original, r.Translation, r.Description, r.AccountID)

	w, err := scanWord(row)
	if err != nil {
		if isPqErr(err, errForeignKeyViolation) {
			return model.Word{}, ErrNotFound
		}

		return model.Word{}, fmt.Errorf("insert word: %w", err)
	}

	return w, nil
}

func (s *PostgresStore) GetWord(ctx context.Context, id int64) (model.Word, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+wordColumns+" FROM words WHERE id = $1", id)

	w, err := scanWord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Word{}, ErrNotFound
		}

		return model.Word{}, fmt.Errorf("get word: %w", err)
	}

	return w, nil
}

func (s *PostgresStore) ListWords(ctx context.Context) ([]model.Word, error) {
	return s.queryWords(ctx, "SELECT "+wordColumns+" FROM words ORDER BY created_at DESC, id DESC")
}

func (s *PostgresStore) TopWords(ctx context.Context, limit int) ([]model.Word, error) {
	return s.queryWords(ctx, "SELECT "+wordColumns+" FROM words ORDER BY likes DESC, id LIMIT $1", limit)
}

func (s *PostgresStore) queryWords(ctx context.Context, query string, args ...any) ([]model.Word, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	words := []model.Word{}
	for rows.Next() {
		var w model.Word
		if err := rows.Scan(&w.ID, &w.Original, &w.Translation, &w.Description, &w.AccountID, &w.Likes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}

	return words, nil
}

func (s *PostgresStore) UpdateWord(ctx context.Context, r WordUpdateRequest) (model.Word, error) {
	row := s.q.QueryRowContext(ctx,
		`UPDATE words SET
			original = COALESCE($2, original),
			translation = COALESCE($3, translation),
			description = COALESCE($4, description),
			account_id = COALESCE($5, account_id)
		WHERE id = $1 RETURNING `+wordColumns,
		r.ID, r.Original, r.Translation, r.Description, r.AccountID)

	w, err := scanWord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Word{}, ErrNotFound
		}
		if isPqErr(err, errForeignKeyViolation) {
			return model.Word{}, ErrNotFound
		}

		return model.Word{}, fmt.Errorf("update word: %w", err)
	}

	return w, nil
}

func (s *PostgresStore) DeleteWord(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM words WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	return requireAffected(res, "delete word")
}

func (s *PostgresStore) LikeWord(ctx context.Context, id int64) (model.Word, error) {
	row := s.q.QueryRowContext(ctx,
		"UPDATE words SET likes = likes + 1 WHERE id = $1 RETURNING "+wordColumns, id)

	w, err := scanWord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Word{}, ErrNotFound
		}

		return model.Word{}, fmt.Errorf("like word: %w", err)
	}

	return w, nil
}

const experienceColumns = "id, title, description, image_url, location, created_at"

func scanExperience(row *sql.Row) (model.Experience, error) {
	var e model.Experience
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.ImageURL, &e.Location, &e.CreatedAt)
	return e, err
}

func (s *PostgresStore) InsertExperience(ctx context.Context, r ExperienceInsertRequest) (model.Experience, error) {
	row := s.q.QueryRowContext(ctx,
		"INSERT INTO experiences (title, description, image_url, location) VALUES ($1, $2, $3, $4) RETURNING "+experienceColumns,
		r.Title, r.Description, r.ImageURL, r.Location)

	e, err := scanExperience(row)
	if err != nil {
		return model.Experience{}, fmt.Errorf("insert experience: %w", err)
	}

	return e, nil
}

func (s *PostgresStore) GetExperience(ctx context.Context, id int64) (model.Experience, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+experienceColumns+" FROM experiences WHERE id = $1", id)

	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Experience{}, ErrNotFound
		}

		return model.Experience{}, fmt.Errorf("get experience: %w", err)
	}

	return e, nil
}

func (s *PostgresStore) ListExperiences(ctx context.Context) ([]model.Experience, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT "+experienceColumns+" FROM experiences ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	experiences := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.ImageURL, &e.Location, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		experiences = append(experiences, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	return experiences, nil
}

func (s *PostgresStore) UpdateExperience(ctx context.Context, r ExperienceUpdateRequest) (model.Experience, error) {
	row := s.q.QueryRowContext(ctx,
		`UPDATE experiences SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			location = COALESCE($5, location)
		WHERE id = $1 RETURNING `+experienceColumns,
		r.ID, r.Title, r.Description, r.ImageURL, r.Location)

	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Experience{}, ErrNotFound
		}

		return model.Experience{}, fmt.Errorf("update experience: %w", err)
	}

	return e, nil
}

func (s *PostgresStore) DeleteExperience(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM experiences WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}

	return requireAffected(res, "delete experience")
}

func (s *PostgresStore) CountPhotos(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM photos")
}

func (s *PostgresStore) CountWords(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM words")
}

func (s *PostgresStore) CountExperiences(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM experiences")
}

func (s *PostgresStore) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := s.q.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}

	return n, nil
}

// SetPhotoLikes overwrites the counter directly. Only the seed loader uses it;
// the API mutates likes exclusively through LikePhoto.
func (s *PostgresStore) SetPhotoLikes(ctx context.Context, id int64, likes int) error {
	_, err := s.q.ExecContext(ctx, "UPDATE photos SET likes = $2 WHERE id = $1", id, likes)
	if err != nil {
		return fmt.Errorf("set photo likes: %w", err)
	}

	return nil
}

func (s *PostgresStore) SetWordLikes(ctx context.Context, id int64, likes int) error {
	_, err := s.q.ExecContext(ctx, "UPDATE words SET likes = $2 WHERE id = $1", id, likes)
	if err != nil {
		return fmt.Errorf("set word likes: %w", err)
	}

	return nil
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func isPqErr(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == code
}

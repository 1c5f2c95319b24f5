package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
	"ogiribattle/src/infra/db"
)

// PostgresRepository implements GameRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Migrate creates the schema if it does not exist yet. The two partial
// unique indexes on votes enforce at-most-one-vote-per-identity at the
// storage level and give UpsertVote its conflict targets.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id      text PRIMARY KEY,
			display_name text NOT NULL,
			handle       text,
			avatar_url   text,
			created_at   timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS prompts (
			prompt_id  text PRIMARY KEY,
			title      text NOT NULL,
			body       text,
			kind       text NOT NULL DEFAULT 'text',
			image_url  text,
			status     text NOT NULL DEFAULT 'upcoming',
			tags       text[] NOT NULL DEFAULT '{}',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS jokes (
			joke_id    text PRIMARY KEY,
			prompt_id  text NOT NULL REFERENCES prompts (prompt_id),
			user_id    text REFERENCES users (user_id),
			body       text NOT NULL,
			tags       text[] NOT NULL DEFAULT '{}',
			source     text NOT NULL DEFAULT 'app',
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS votes (
			vote_id       text PRIMARY KEY,
			joke_id       text NOT NULL REFERENCES jokes (joke_id),
			voter_user_id text REFERENCES users (user_id),
			guest_name    text,
			type          text NOT NULL,
			weight        int NOT NULL,
			created_at    timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS votes_joke_user_key
			ON votes (joke_id, voter_user_id) WHERE voter_user_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS votes_joke_guest_key
			ON votes (joke_id, guest_name) WHERE voter_user_id IS NULL AND guest_name IS NOT NULL`,
		`CREATE TABLE IF NOT EXISTS comments (
			comment_id text PRIMARY KEY,
			joke_id    text NOT NULL REFERENCES jokes (joke_id),
			user_id    text REFERENCES users (user_id),
			guest_name text,
			body       text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	r.log.Info("database schema ready")
	return nil
}

// Users

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	const q = `
		SELECT user_id, display_name, handle, avatar_url, created_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Handle, &u.AvatarURL, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	const q = `
		SELECT user_id, display_name, handle, avatar_url, created_at
		FROM users
		WHERE user_id = $1
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.DisplayName, &u.Handle, &u.AvatarURL, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, data ports.NewUser) (*domain.User, error) {
	const q = `
		INSERT INTO users (user_id, display_name, handle, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, display_name, handle, avatar_url, created_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, uuid.New().String(), data.DisplayName, data.Handle, data.AvatarURL).
		Scan(&u.ID, &u.DisplayName, &u.Handle, &u.AvatarURL, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Prompts

func (r *PostgresRepository) ListRecentPrompts(ctx context.Context, limit int, statuses []domain.PromptStatus) ([]domain.Prompt, error) {
	const q = `
		SELECT prompt_id, title, body, kind, image_url, status, tags, created_at
		FROM prompts
		WHERE status = ANY($1)
		ORDER BY created_at DESC, prompt_id
		LIMIT $2
	`
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	rows, err := r.pool.Query(ctx, q, ss, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrompts(rows)
}

func (r *PostgresRepository) ListAllPrompts(ctx context.Context) ([]domain.Prompt, error) {
	const q = `
		SELECT prompt_id, title, body, kind, image_url, status, tags, created_at
		FROM prompts
		ORDER BY created_at DESC, prompt_id
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPrompts(rows)
}

func scanPrompts(rows pgx.Rows) ([]domain.Prompt, error) {
	var prompts []domain.Prompt
	for rows.Next() {
		var p domain.Prompt
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.Kind, &p.ImageURL, &p.Status, &p.Tags, &p.CreatedAt); err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

func (r *PostgresRepository) GetPrompt(ctx context.Context, id string) (*domain.Prompt, error) {
	const q = `
		SELECT prompt_id, title, body, kind, image_url, status, tags, created_at
		FROM prompts
		WHERE prompt_id = $1
	`
	var p domain.Prompt
	if err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Title, &p.Body, &p.Kind, &p.ImageURL, &p.Status, &p.Tags, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("prompt")
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) AddPromptTag(ctx context.Context, promptID, tag string) (*domain.Prompt, error) {
	const q = `
		UPDATE prompts
		SET tags = array_append(tags, $2)
		WHERE prompt_id = $1
		RETURNING prompt_id, title, body, kind, image_url, status, tags, created_at
	`
	var p domain.Prompt
	if err := r.pool.QueryRow(ctx, q, promptID, tag).Scan(&p.ID, &p.Title, &p.Body, &p.Kind, &p.ImageURL, &p.Status, &p.Tags, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("prompt")
		}
		return nil, err
	}
	return &p, nil
}

// Jokes

func (r *PostgresRepository) ListJokesByPrompt(ctx context.Context, promptID string) ([]domain.Joke, error) {
	const q = `
		SELECT joke_id, prompt_id, user_id, body, tags, source, created_at
		FROM jokes
		WHERE prompt_id = $1
		ORDER BY created_at, joke_id
	`
	rows, err := r.pool.Query(ctx, q, promptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJokes(rows)
}

func (r *PostgresRepository) ListAllJokes(ctx context.Context) ([]domain.Joke, error) {
	const q = `
		SELECT joke_id, prompt_id, user_id, body, tags, source, created_at
		FROM jokes
		ORDER BY created_at, joke_id
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJokes(rows)
}

func scanJokes(rows pgx.Rows) ([]domain.Joke, error) {
	var jokes []domain.Joke
	for rows.Next() {
		var j domain.Joke
		if err := rows.Scan(&j.ID, &j.PromptID, &j.UserID, &j.Body, &j.Tags, &j.Source, &j.CreatedAt); err != nil {
			return nil, err
		}
		jokes = append(jokes, j)
	}
	return jokes, rows.Err()
}

func (r *PostgresRepository) GetJoke(ctx context.Context, id string) (*domain.Joke, error) {
	const q = `
		SELECT joke_id, prompt_id, user_id, body, tags, source, created_at
		FROM jokes
		WHERE joke_id = $1
	`
	var j domain.Joke
	if err := r.pool.QueryRow(ctx, q, id).Scan(&j.ID, &j.PromptID, &j.UserID, &j.Body, &j.Tags, &j.Source, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}

func (r *PostgresRepository) CreateJoke(ctx context.Context, data ports.NewJoke) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (joke_id, prompt_id, user_id, body, tags, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING joke_id, prompt_id, user_id, body, tags, source, created_at
	`
	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}
	var j domain.Joke
	err := r.pool.QueryRow(ctx, q, uuid.New().String(), data.PromptID, data.UserID, data.Body, tags, string(data.Source)).
		Scan(&j.ID, &j.PromptID, &j.UserID, &j.Body, &j.Tags, &j.Source, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Votes

func (r *PostgresRepository) ListVotesByJokeIDs(ctx context.Context, jokeIDs []string) ([]domain.Vote, error) {
	if len(jokeIDs) == 0 {
		return nil, nil
	}
	const q = `
		SELECT vote_id, joke_id, voter_user_id, guest_name, type, weight, created_at
		FROM votes
		WHERE joke_id = ANY($1)
	`
	rows, err := r.pool.Query(ctx, q, jokeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.JokeID, &v.VoterUserID, &v.GuestName, &v.Type, &v.Weight, &v.CreatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

// UpsertVote writes the voter's single vote on a joke. The partial
// unique indexes serialize concurrent casts for the same joke+identity
// key: the conflicting insert blocks on the winner's row lock and then
// takes the DO UPDATE branch, which preserves vote_id and created_at.
func (r *PostgresRepository) UpsertVote(ctx context.Context, data ports.VoteUpsert, weight int) (*domain.Vote, error) {
	const userQ = `
		INSERT INTO votes (vote_id, joke_id, voter_user_id, guest_name, type, weight)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (joke_id, voter_user_id) WHERE voter_user_id IS NOT NULL
		DO UPDATE SET type = EXCLUDED.type, weight = EXCLUDED.weight
		RETURNING vote_id, joke_id, voter_user_id, guest_name, type, weight, created_at
	`
	const guestQ = `
		INSERT INTO votes (vote_id, joke_id, voter_user_id, guest_name, type, weight)
		VALUES ($1, $2, NULL, $3, $4, $5)
		ON CONFLICT (joke_id, guest_name) WHERE voter_user_id IS NULL AND guest_name IS NOT NULL
		DO UPDATE SET type = EXCLUDED.type, weight = EXCLUDED.weight
		RETURNING vote_id, joke_id, voter_user_id, guest_name, type, weight, created_at
	`

	var row pgx.Row
	if data.VoterUserID != nil {
		row = r.pool.QueryRow(ctx, userQ, uuid.New().String(), data.JokeID, data.VoterUserID, data.GuestName, string(data.Type), weight)
	} else {
		row = r.pool.QueryRow(ctx, guestQ, uuid.New().String(), data.JokeID, data.GuestName, string(data.Type), weight)
	}

	var v domain.Vote
	if err := row.Scan(&v.ID, &v.JokeID, &v.VoterUserID, &v.GuestName, &v.Type, &v.Weight, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

// Comments

func (r *PostgresRepository) ListCommentsByJoke(ctx context.Context, jokeID string) ([]domain.Comment, error) {
	const q = `
		SELECT comment_id, joke_id, user_id, guest_name, body, created_at
		FROM comments
		WHERE joke_id = $1
		ORDER BY created_at, comment_id
	`
	rows, err := r.pool.Query(ctx, q, jokeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.JokeID, &c.UserID, &c.GuestName, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *PostgresRepository) CreateComment(ctx context.Context, data ports.NewComment) (*domain.Comment, error) {
	const q = `
		INSERT INTO comments (comment_id, joke_id, user_id, guest_name, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING comment_id, joke_id, user_id, guest_name, body, created_at
	`
	var c domain.Comment
	err := r.pool.QueryRow(ctx, q, uuid.New().String(), data.JokeID, data.UserID, data.GuestName, data.Body).
		Scan(&c.ID, &c.JokeID, &c.UserID, &c.GuestName, &c.Body, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

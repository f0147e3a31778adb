package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DenysFlnk/playerroster/internal/model"
	"github.com/DenysFlnk/playerroster/internal/storage"
)

// Schema holds the DDL for the players table. Enums are stored as their
// textual names; derived fields are stored, not recomputed on read.
const Schema = `
CREATE TABLE IF NOT EXISTS players (
    id               BIGSERIAL PRIMARY KEY,
    name             VARCHAR(12) NOT NULL,
    title            VARCHAR(30) NOT NULL,
    race             TEXT        NOT NULL,
    profession       TEXT        NOT NULL,
    birthday         BIGINT      NOT NULL,
    banned           BOOLEAN     NOT NULL,
    experience       INTEGER     NOT NULL,
    level            INTEGER     NOT NULL,
    until_next_level INTEGER     NOT NULL
);
`

var playerColumns = []string{
	"id", "name", "title", "race", "profession",
	"birthday", "banned", "experience", "level", "until_next_level",
}

// Storage is a Postgres-backed implementation of the storage interface
type Storage struct {
	pool *pgxpool.Pool
}

// New creates a new Postgres storage instance
func New(ctx context.Context, cfg Config) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

// NewWithPool creates a Postgres storage with an existing pool (for testing)
func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

// Init creates the players table if it does not exist
func (s *Storage) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, Schema)
	return err
}

// Close closes the connection pool
func (s *Storage) Close() {
	s.pool.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	query, args, err := sq.
		Select(playerColumns...).
		From("players").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	player, err := scanPlayer(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (s *Storage) FindPlayers(ctx context.Context, filter model.PlayerFilter, page model.Page, order model.SortOrder) ([]*model.Player, error) {
	if page.Number < 0 || page.Size < 1 {
		return []*model.Player{}, nil
	}

	query, args, err := sq.
		Select(playerColumns...).
		From("players").
		Where(filterConjunction(filter)).
		OrderBy(order.Field()+" ASC", "id ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*model.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func (s *Storage) CountPlayers(ctx context.Context, filter model.PlayerFilter) (int, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From("players").
		Where(filterConjunction(filter)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	if player.ID == 0 {
		return s.insertPlayer(ctx, player)
	}
	return s.updatePlayer(ctx, player)
}

func (s *Storage) insertPlayer(ctx context.Context, player *model.Player) error {
	query, args, err := sq.
		Insert("players").
		Columns(playerColumns[1:]...).
		Values(
			player.Name, player.Title, player.Race, player.Profession,
			player.Birthday, player.Banned, player.Experience,
			player.Level, player.UntilNextLevel,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return s.pool.QueryRow(ctx, query, args...).Scan(&player.ID)
}

func (s *Storage) updatePlayer(ctx context.Context, player *model.Player) error {
	query, args, err := sq.
		Update("players").
		Set("name", player.Name).
		Set("title", player.Title).
		Set("race", player.Race).
		Set("profession", player.Profession).
		Set("birthday", player.Birthday).
		Set("banned", player.Banned).
		Set("experience", player.Experience).
		Set("level", player.Level).
		Set("until_next_level", player.UntilNextLevel).
		Where(sq.Eq{"id": player.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.pool.Exec(ctx, query, args...)
	return err
}

func (s *Storage) DeletePlayer(ctx context.Context, id int64) error {
	query, args, err := sq.
		Delete("players").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.pool.Exec(ctx, query, args...)
	return err
}

// filterConjunction renders the filter as an AND of its present clauses.
// Its semantics must stay in step with model.PlayerFilter.Matches.
func filterConjunction(f model.PlayerFilter) sq.And {
	and := sq.And{}
	if f.Name != nil {
		and = append(and, sq.Like{"name": "%" + *f.Name + "%"})
	}
	if f.Title != nil {
		and = append(and, sq.Like{"title": "%" + *f.Title + "%"})
	}
	if f.Race != nil {
		and = append(and, sq.Eq{"race": *f.Race})
	}
	if f.Profession != nil {
		and = append(and, sq.Eq{"profession": *f.Profession})
	}
	if f.After != nil {
		and = append(and, sq.GtOrEq{"birthday": *f.After})
	}
	if f.Before != nil {
		and = append(and, sq.LtOrEq{"birthday": *f.Before})
	}
	if f.Banned != nil {
		and = append(and, sq.Eq{"banned": *f.Banned})
	}
	if f.MinExperience != nil {
		and = append(and, sq.GtOrEq{"experience": *f.MinExperience})
	}
	if f.MaxExperience != nil {
		and = append(and, sq.LtOrEq{"experience": *f.MaxExperience})
	}
	if f.MinLevel != nil {
		and = append(and, sq.GtOrEq{"level": *f.MinLevel})
	}
	if f.MaxLevel != nil {
		and = append(and, sq.LtOrEq{"level": *f.MaxLevel})
	}
	return and
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Race, &p.Profession,
		&p.Birthday, &p.Banned, &p.Experience, &p.Level, &p.UntilNextLevel,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

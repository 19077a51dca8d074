// Package storage persists users and transactions in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements ledger.Repository on a SQLite file.
type SQLiteRepository struct {
	db            *sql.DB
	defaultBudget decimal.Decimal
	logger        logging.Logger
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath and migrates it.
// defaultBudget is reported for users whose row has no monthly budget.
func NewSQLiteRepository(dbPath string, defaultBudget decimal.Decimal, logger logging.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), models.PermissionDirectory); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Debug("Database ready", logging.F(logging.FieldDatabase, dbPath))
	return &SQLiteRepository{db: db, defaultBudget: defaultBudget, logger: logger}, nil
}

// Close closes the database.
func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const userColumns = "id, username, personality, monthly_budget, daily_limit"

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteRepository) scanUser(row rowScanner) (models.User, error) {
	var (
		user    models.User
		tone    string
		monthly decimal.NullDecimal
		daily   decimal.NullDecimal
	)
	if err := row.Scan(&user.ID, &user.Username, &tone, &monthly, &daily); err != nil {
		return models.User{}, err
	}

	user.Tone = models.Tone(tone).OrDefault()
	user.Budget.MonthlyBudget = r.defaultBudget
	if monthly.Valid {
		user.Budget.MonthlyBudget = monthly.Decimal
	}
	if daily.Valid {
		limit := daily.Decimal
		user.Budget.DailyLimit = &limit
	}
	return user, nil
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

// isConstraint reports whether err is the given extended constraint violation.
// A bare SQLITE_CONSTRAINT also matches when extended codes are off.
func isConstraint(err error, extended int) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == extended || code == sqlite3.SQLITE_CONSTRAINT
}

func (r *SQLiteRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, personality, monthly_budget, daily_limit) VALUES (?, ?, ?, ?)",
		user.Username, string(user.Tone), user.Budget.MonthlyBudget, nullable(user.Budget.DailyLimit))
	if err != nil {
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE) {
			return models.User{}, apperror.ErrUserExists
		}
		return models.User{}, &apperror.StorageError{Op: "create user", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, &apperror.StorageError{Op: "create user", Err: err}
	}
	user.ID = id
	return user, nil
}

func (r *SQLiteRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return r.userFromRow(row, "get user")
}

func (r *SQLiteRepository) GetUserByName(ctx context.Context, username string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	return r.userFromRow(row, "get user by name")
}

func (r *SQLiteRepository) userFromRow(row rowScanner, op string) (models.User, error) {
	user, err := r.scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperror.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, &apperror.StorageError{Op: op, Err: err}
	}
	return user, nil
}

// UpdateSettings applies the update inside a transaction and returns the stored user.
func (r *SQLiteRepository) UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, &apperror.StorageError{Op: "begin", Err: err}
	}
	defer tx.Rollback() //nolint:errcheck

	row := tx.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", userID)
	user, err := r.userFromRow(row, "load settings")
	if err != nil {
		return models.User{}, err
	}

	user = update.Apply(user)
	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET personality = ?, monthly_budget = ?, daily_limit = ? WHERE id = ?",
		string(user.Tone), user.Budget.MonthlyBudget, nullable(user.Budget.DailyLimit), userID); err != nil {
		return models.User{}, &apperror.StorageError{Op: "update settings", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, &apperror.StorageError{Op: "commit", Err: err}
	}
	return user, nil
}

func (r *SQLiteRepository) AppendTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO transactions (user_id, date, description, amount, category) VALUES (?, ?, ?, ?, ?)",
		t.UserID, t.DateString(), t.Description, t.Amount, t.Category.String())
	if err != nil {
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return models.Transaction{}, apperror.ErrUserNotFound
		}
		return models.Transaction{}, &apperror.StorageError{Op: "append transaction", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Transaction{}, &apperror.StorageError{Op: "append transaction", Err: err}
	}
	t.ID = id

	r.logger.Debug("Transaction saved",
		logging.F(logging.FieldUserID, t.UserID),
		logging.F(logging.FieldDate, t.DateString()),
		logging.F(logging.FieldAmount, t.Amount.String()))
	return t, nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, date, description, amount, category FROM transactions WHERE user_id = ? ORDER BY date DESC, id DESC",
		userID)
	if err != nil {
		return nil, &apperror.StorageError{Op: "list transactions", Err: err}
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var (
			t        models.Transaction
			date     string
			category string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &date, &t.Description, &t.Amount, &category); err != nil {
			return nil, &apperror.StorageError{Op: "scan transaction", Err: err}
		}
		if t.Date, err = models.ParseDay(date); err != nil {
			return nil, &apperror.StorageError{Op: "scan transaction", Err: fmt.Errorf("bad date %q: %w", date, err)}
		}
		t.Category = models.ParseCategory(category)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperror.StorageError{Op: "list transactions", Err: err}
	}
	return out, nil
}

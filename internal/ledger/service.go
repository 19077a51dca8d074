// Package ledger records transactions for a logged-in user and produces the
// analytics report from the stored history and the current budget settings.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/finbot/internal/analytics"
	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/logging"
	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
)

// Categorizer assigns a category to a description.
type Categorizer interface {
	Categorize(description string) models.Category
}

// Analyzer builds a report from a history.
type Analyzer interface {
	Analyze(history []models.Transaction, budget models.BudgetConfig, today time.Time) analytics.Report
}

// Service implements the ledger operations on top of a Repository.
type Service struct {
	repo        Repository
	categorizer Categorizer
	analyzer    Analyzer
	logger      logging.Logger
	now         func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the function used for "today". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a ledger service.
func NewService(repo Repository, categorizer Categorizer, analyzer Analyzer, logger logging.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Service{
		repo:        repo,
		categorizer: categorizer,
		analyzer:    analyzer,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

// Register creates a user. The username must be non-blank and unique.
func (s *Service) Register(ctx context.Context, username string, tone models.Tone, budget models.BudgetConfig) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, &apperror.ValidationError{Field: "username", Value: username, Reason: "must not be empty"}
	}

	parsed, err := models.ParseTone(string(tone))
	if err != nil {
		return models.User{}, apperror.NewValidationError("tone", string(tone), err)
	}
	if err := validateBudget(budget.MonthlyBudget, budget.DailyLimit); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.CreateUser(ctx, models.User{Username: username, Tone: parsed, Budget: budget})
	if err != nil {
		return models.User{}, fmt.Errorf("register %s: %w", username, err)
	}

	s.logger.Info("User registered",
		logging.F(logging.FieldUser, user.Username),
		logging.F(logging.FieldUserID, user.ID))
	return user, nil
}

// Login opens a session for an existing user.
func (s *Service) Login(ctx context.Context, username string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.ErrNoSession
	}

	user, err := s.repo.GetUserByName(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", username, err)
	}

	s.logger.Debug("User logged in", logging.F(logging.FieldUser, user.Username))
	return &Session{User: user}, nil
}

// AddTransaction records an expense dated today and returns it with the refreshed report.
func (s *Service) AddTransaction(ctx context.Context, sess *Session, description string, amount decimal.Decimal) (models.Transaction, analytics.Report, error) {
	return s.AddTransactionOn(ctx, sess, s.now(), description, amount)
}

// AddTransactionOn records an expense on the given day. The category is assigned here
// and never recomputed.
func (s *Service) AddTransactionOn(ctx context.Context, sess *Session, date time.Time, description string, amount decimal.Decimal) (models.Transaction, analytics.Report, error) {
	if !sess.valid() {
		return models.Transaction{}, analytics.Report{}, apperror.ErrNoSession
	}

	description = strings.TrimSpace(description)
	category := s.categorizer.Categorize(description)
	tx := models.NewTransaction(sess.UserID(), date, description, amount, category)

	stored, err := s.repo.AppendTransaction(ctx, tx)
	if err != nil {
		return models.Transaction{}, analytics.Report{}, fmt.Errorf("add transaction: %w", err)
	}

	s.logger.WithFields(
		logging.F(logging.FieldUser, sess.User.Username),
		logging.F(logging.FieldDate, stored.DateString()),
		logging.F(logging.FieldAmount, stored.Amount.String()),
		logging.F(logging.FieldCategory, stored.Category.String()),
	).Info("Transaction added")

	report, err := s.Report(ctx, sess)
	if err != nil {
		return stored, analytics.Report{}, err
	}
	return stored, report, nil
}

// Transactions returns the session user's history, newest first.
func (s *Service) Transactions(ctx context.Context, sess *Session) ([]models.Transaction, error) {
	if !sess.valid() {
		return nil, apperror.ErrNoSession
	}

	history, err := s.repo.ListTransactions(ctx, sess.UserID())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return history, nil
}

// Report analyzes the full history with the budget currently stored for the user.
// sess.User is refreshed from the repository.
func (s *Service) Report(ctx context.Context, sess *Session) (analytics.Report, error) {
	if !sess.valid() {
		return analytics.Report{}, apperror.ErrNoSession
	}

	user, err := s.repo.GetUser(ctx, sess.UserID())
	if err != nil {
		return analytics.Report{}, fmt.Errorf("load settings: %w", err)
	}
	sess.User = user

	history, err := s.Transactions(ctx, sess)
	if err != nil {
		return analytics.Report{}, err
	}

	return s.analyzer.Analyze(history, user.Budget, s.now()), nil
}

// CategoryShares returns the current month's category shares for the chart view.
// It returns apperror.ErrNoTransactions when the month has no transactions.
func (s *Service) CategoryShares(ctx context.Context, sess *Session) ([]analytics.CategoryShare, error) {
	history, err := s.Transactions(ctx, sess)
	if err != nil {
		return nil, err
	}

	shares := analytics.CategoryShares(analytics.MonthlyWindow(history, s.now()))
	if len(shares) == 0 {
		return nil, apperror.ErrNoTransactions
	}
	return shares, nil
}

// UpdateSettings changes tone, budget or daily limit. Changes apply to every later
// report, including figures for past days.
func (s *Service) UpdateSettings(ctx context.Context, sess *Session, update models.SettingsUpdate) (*Session, error) {
	if !sess.valid() {
		return nil, apperror.ErrNoSession
	}
	if update.IsEmpty() {
		return nil, &apperror.ValidationError{Field: "settings", Reason: "nothing to update"}
	}
	if update.Tone != nil {
		parsed, err := models.ParseTone(string(*update.Tone))
		if err != nil {
			return nil, apperror.NewValidationError("tone", string(*update.Tone), err)
		}
		update.Tone = &parsed
	}
	var monthly decimal.Decimal
	if update.MonthlyBudget != nil {
		monthly = *update.MonthlyBudget
	}
	if err := validateBudget(monthly, update.DailyLimit); err != nil {
		return nil, err
	}

	user, err := s.repo.UpdateSettings(ctx, sess.UserID(), update)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.logger.Info("Settings updated", logging.F(logging.FieldUser, user.Username))
	return &Session{User: user}, nil
}

var errNegative = errors.New("must not be negative")

func validateBudget(monthly decimal.Decimal, daily *decimal.Decimal) error {
	if monthly.IsNegative() {
		return apperror.NewValidationError("monthly budget", monthly.String(), errNegative)
	}
	if daily != nil && daily.IsNegative() {
		return apperror.NewValidationError("daily limit", daily.String(), errNegative)
	}
	return nil
}

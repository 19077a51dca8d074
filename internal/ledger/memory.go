package ledger

import (
	"context"
	"sort"
	"sync"

	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/dateutils"
	"fjacquet/finbot/internal/models"
)

// MemoryRepository keeps users and transactions in process memory.
type MemoryRepository struct {
	mu           sync.Mutex
	users        map[int64]models.User
	byName       map[string]int64
	transactions []models.Transaction
	nextUserID   int64
	nextTxID     int64
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  make(map[int64]models.User),
		byName: make(map[string]int64),
	}
}

func (r *MemoryRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[user.Username]; taken {
		return models.User{}, apperror.ErrUserExists
	}

	r.nextUserID++
	user.ID = r.nextUserID
	user.Budget = copyBudget(user.Budget)
	r.users[user.ID] = user
	r.byName[user.Username] = user.ID
	return user, nil
}

func (r *MemoryRepository) GetUser(_ context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, apperror.ErrUserNotFound
	}
	user.Budget = copyBudget(user.Budget)
	return user, nil
}

func (r *MemoryRepository) GetUserByName(ctx context.Context, username string) (models.User, error) {
	r.mu.Lock()
	id, ok := r.byName[username]
	r.mu.Unlock()

	if !ok {
		return models.User{}, apperror.ErrUserNotFound
	}
	return r.GetUser(ctx, id)
}

func (r *MemoryRepository) UpdateSettings(_ context.Context, userID int64, update models.SettingsUpdate) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, apperror.ErrUserNotFound
	}
	user = update.Apply(user)
	r.users[userID] = user
	user.Budget = copyBudget(user.Budget)
	return user, nil
}

func (r *MemoryRepository) AppendTransaction(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[tx.UserID]; !ok {
		return models.Transaction{}, apperror.ErrUserNotFound
	}

	r.nextTxID++
	tx.ID = r.nextTxID
	r.transactions = append(r.transactions, tx)
	return tx, nil
}

func (r *MemoryRepository) ListTransactions(_ context.Context, userID int64) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := dateutils.CompareDates(out[i].Date, out[j].Date); c != 0 {
			return c > 0
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func copyBudget(b models.BudgetConfig) models.BudgetConfig {
	if b.DailyLimit != nil {
		limit := *b.DailyLimit
		b.DailyLimit = &limit
	}
	return b
}

package ledger

import (
	"context"

	"fjacquet/finbot/internal/models"
)

// Repository is the storage collaborator of the ledger. Implementations return
// apperror.ErrUserNotFound and apperror.ErrUserExists for the matching cases and
// wrap other failures in *apperror.StorageError.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByName(ctx context.Context, username string) (models.User, error)
	UpdateSettings(ctx context.Context, userID int64, update models.SettingsUpdate) (models.User, error)

	AppendTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	// ListTransactions returns a user's transactions newest first (date, then id, descending).
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
}

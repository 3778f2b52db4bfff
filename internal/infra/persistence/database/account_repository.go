package database

import (
	"context"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts the account. The unique indexes on email and username decide races between
// concurrent registrations; the loser gets ErrEmailTaken or ErrUsernameTaken.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	if accountM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate account id")
		}
		accountM.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if target, ok := uniqueViolation(err); ok {
			return repo.duplicateError(ctx, target, account)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = entity.AccountID(accountM.ID)
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// duplicateError names the violated column. When the driver does not report it, the
// email is looked up to tell the two indexes apart.
func (repo *accountRepository) duplicateError(ctx context.Context, target string, account *entity.Account) error {
	switch {
	case violatesAccountColumn(target, indexAccountsEmail, "email"):
		return errors.WithStack(repository.ErrEmailTaken)
	case violatesAccountColumn(target, indexAccountsUsername, "username"):
		return errors.WithStack(repository.ErrUsernameTaken)
	}

	if _, err := repo.FindByEmail(ctx, account.Email); err == nil {
		return errors.WithStack(repository.ErrEmailTaken)
	}

	return errors.WithStack(repository.ErrUsernameTaken)
}

// FindByID retrieves a single account by its identifier.
func (repo *accountRepository) FindByID(ctx context.Context, id entity.AccountID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id.UUID())
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByUsername retrieves a single account by its username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           entity.AccountID(accountM.ID),
		Username:     accountM.Username,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		CreatedAt:    accountM.CreatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID.UUID(),
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}

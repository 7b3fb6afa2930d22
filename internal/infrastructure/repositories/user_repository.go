package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint       `gorm:"primaryKey"`
	FirstName    string     `gorm:"size:255;not null"`
	LastName     string     `gorm:"size:255;not null"`
	Email        string     `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `gorm:"column:password;not null"`
	IsVerified   bool       `gorm:"default:false"`
	OTPCode      *int       `gorm:"index"`
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. The unique index on email is
// the authoritative guard against concurrent duplicate registrations;
// a violation surfaces as ErrUserAlreadyExists.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByVerificationCode implements domain.UserRepository. The lookup is
// by code value alone; expiry is judged by the domain validator.
func (r *UserRepositoryImpl) FindByVerificationCode(ctx context.Context, code int) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("otp_code = ?", code).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// MarkVerified implements domain.UserRepository. The WHERE clause on the
// code makes the consume conditional: a concurrent attempt that already
// cleared the code leaves zero rows affected.
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, userID uint, code int) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ? AND otp_code = ?", userID, code).
		Updates(map[string]interface{}{
			"is_verified":    true,
			"otp_code":       nil,
			"otp_expires_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOTPInvalid
	}
	return nil
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).
		Where("id = ?", userID).
		Update("password", passwordHash).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	dbUser := &DBUser{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsVerified:   user.IsVerified,
	}
	if user.Verification != nil {
		code := user.Verification.Code
		expiresAt := user.Verification.ExpiresAt
		dbUser.OTPCode = &code
		dbUser.OTPExpiresAt = &expiresAt
	}
	return dbUser
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	user := &domain.User{
		ID:           dbUser.ID,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		IsVerified:   dbUser.IsVerified,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
	if dbUser.OTPCode != nil && dbUser.OTPExpiresAt != nil {
		user.Verification = &domain.Verification{
			Code:      *dbUser.OTPCode,
			ExpiresAt: *dbUser.OTPExpiresAt,
		}
	}
	return user
}

package repository

import (
	"errors"

	"hospital-management-service/internal/domain/entity"
	domainRepo "hospital-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDAndRole(db *gorm.DB, id uuid.UUID, roleID int) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Where("id = ? AND role_id = ?", id, roleID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByRole lists users of one role with optional filters. Empty filter
// fields add no predicate.
func (r *userRepository) FindByRole(db *gorm.DB, roleID int, filter *entity.ActorFilter) ([]entity.User, error) {
	var users []entity.User
	query := db.Where("role_id = ?", roleID)

	if filter != nil {
		if filter.Search != "" {
			query = query.Where("full_name ILIKE ?", "%"+filter.Search+"%")
		}
		if filter.Specialization != "" {
			query = query.Where("specialization ILIKE ?", "%"+filter.Specialization+"%")
		}
		if filter.Gender != "" {
			query = query.Where("gender = ?", filter.Gender)
		}
	}

	err := query.Order("full_name ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Omit("Role").Save(user).Error
}

func (r *userRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.User{})
	return affected.RowsAffected, affected.Error
}

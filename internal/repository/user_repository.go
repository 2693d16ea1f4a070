package repository

import (
	"github.com/taskstack/user-task-api/internal/models"
	"gorm.io/gorm"
)

// userColumns is the read projection for user lookups. The password
// column is excluded so a hash can never leak through a query result.
var userColumns = []string{"id", "first_name", "last_name", "email", "created_at"}

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByEmail finds a user by email. The password column is kept here
// because login needs the stored hash.
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by ID without the password column
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Select(userColumns).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll returns every user without the password column
func (r *GormUserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Select(userColumns).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ReplaceByID overwrites all business columns of the record. Zero-valued
// fields in the replacement are written out, so this is a replace, not a
// merge. The id and created_at columns are untouched.
func (r *GormUserRepository) ReplaceByID(id string, user *models.User) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"password":   user.Password,
	})
	return res.RowsAffected, res.Error
}

// DeleteByID removes a user and returns the removed record
func (r *GormUserRepository) DeleteByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Select(userColumns).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).Delete(&models.User{}).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

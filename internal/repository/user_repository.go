package repository

import (
	"github.com/fadilmartias/jobmatch/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdateUser(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) FindUserByID(id string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "id = ?", id).Error
	return &u, err
}

func (r *UserRepository) FindUserByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "email = ?", email).Error
	return &u, err
}

// ActiveUsers returns every user included in a batch run.
func (r *UserRepository) ActiveUsers() ([]model.User, error) {
	var users []model.User
	err := r.db.Where("active = ?", true).Order("created_at ASC").Find(&users).Error
	return users, err
}

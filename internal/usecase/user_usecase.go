package usecase

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/repository"
	"github.com/fadilmartias/jobmatch/internal/service"
)

type UserUsecase struct {
	userRepo *repository.UserRepository
}

func NewUserUsecase(userRepo *repository.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// Sync upserts the profile row for a Supabase auth user.
func (uc *UserUsecase) Sync(user *model.User) error {
	existing, err := uc.userRepo.FindUserByID(user.ID.String())
	if err != nil {
		user.Active = true
		user.CreatedAt = time.Now()
		user.UpdatedAt = time.Now()
		if user.Preferences == "" {
			user.Preferences = "{}"
		}
		return uc.userRepo.CreateUser(user)
	}
	existing.Email = user.Email
	existing.FullName = user.FullName
	if user.Preferences != "" {
		existing.Preferences = user.Preferences
	}
	existing.UpdatedAt = time.Now()
	*user = *existing
	return uc.userRepo.UpdateUser(existing)
}

func (uc *UserUsecase) Get(id string) (*model.User, error) {
	return uc.userRepo.FindUserByID(id)
}

// UpdatePreferences validates and stores the preference blob.
func (uc *UserUsecase) UpdatePreferences(id string, preferences string) (*model.User, error) {
	if _, err := service.ParsePreferences(preferences); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	user.Preferences = preferences
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

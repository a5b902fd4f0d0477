package user

import (
	"context"

	"go-citizen/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson"
)

type ProfileUpdate struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// WalletDocument is a completed application surfaced as a digital document.
type WalletDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IssuedDate  string `json:"issued_date"`
	Issuer      string `json:"issuer"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// WalletSource is the slice of the workflow engine the user feature reads:
// completed applications for one applicant.
type WalletSource interface {
	CompletedForApplicant(ctx context.Context, nic string) ([]WalletDocument, error)
}

type UserService interface {
	GetProfile(ctx context.Context, nic string) (*User, error)
	UpdateProfile(ctx context.Context, nic string, update ProfileUpdate) error
	Wallet(ctx context.Context, nic string) ([]WalletDocument, error)
}

type UserServiceImpl struct {
	Repo      UserRepository
	WalletSrc WalletSource
}

func NewUserService(repo UserRepository, wallet WalletSource) UserService {
	return &UserServiceImpl{Repo: repo, WalletSrc: wallet}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, nic string) (*User, error) {
	user, err := s.Repo.FindByNIC(ctx, nic)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", nic)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, nic string, update ProfileUpdate) error {
	user, err := s.Repo.FindByNIC(ctx, nic)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user %s not found", nic)
	}
	return s.Repo.UpdateByNIC(ctx, nic, bson.M{
		"phone":   update.Phone,
		"email":   update.Email,
		"address": update.Address,
	})
}

func (s *UserServiceImpl) Wallet(ctx context.Context, nic string) ([]WalletDocument, error) {
	return s.WalletSrc.CompletedForApplicant(ctx, nic)
}

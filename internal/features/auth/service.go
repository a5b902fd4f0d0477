package auth

import (
	"context"
	"time"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/audit"
	"go-citizen/internal/features/user"
	"go-citizen/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	FullName string             `json:"fullname"`
	NIC      string             `json:"nic"`
	Phone    string             `json:"phone"`
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Address  string             `json:"address"`
	Role     common_models.Role `json:"role"`
}

type LoginInput struct {
	NIC      string `json:"nic"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token    string             `json:"access_token"`
	Role     common_models.Role `json:"role"`
	FullName string             `json:"name"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

type AuthServiceImpl struct {
	UserRepo     user.UserRepository
	AuditService audit.AuditService
}

func NewAuthService(userRepo user.UserRepository, auditService audit.AuditService) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo, AuditService: auditService}
}

// Register creates a citizen account. Officer accounts are created through
// the directory's add-subordinate flow, never through self-service.
func (s *AuthServiceImpl) Register(ctx context.Context, input RegisterInput) error {
	if input.NIC == "" || input.FullName == "" || input.Password == "" {
		return apperr.Validation(apperr.CodeMalformedRequest, "fullname, nic and password are required")
	}
	if input.Role == "" {
		input.Role = common_models.RoleCitizen
	}
	if input.Role != common_models.RoleCitizen {
		return apperr.Authorization(apperr.CodeRoleNotPermitted, "self-service registration is citizen only")
	}

	existing, err := s.UserRepo.FindByNIC(ctx, input.NIC)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.Conflict(apperr.CodeDuplicateIdentity, "NIC %s already registered", input.NIC)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.UserRepo.Create(ctx, user.User{
		FullName:       input.FullName,
		NIC:            input.NIC,
		Phone:          input.Phone,
		Email:          input.Email,
		HashedPassword: string(hashed),
		Role:           common_models.RoleCitizen,
		Address:        input.Address,
		CreatedAt:      time.Now().UTC(),
	})
}

func (s *AuthServiceImpl) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	dbUser, err := s.UserRepo.FindByNIC(ctx, input.NIC)
	if err != nil {
		return nil, err
	}
	if dbUser == nil {
		return nil, apperr.Validation(apperr.CodeInvalidCredentials, "invalid NIC or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.HashedPassword), []byte(input.Password)); err != nil {
		return nil, apperr.Validation(apperr.CodeInvalidCredentials, "invalid NIC or password")
	}

	token, err := utils.GenerateToken(dbUser.NIC, dbUser.Role)
	if err != nil {
		return nil, err
	}

	_ = s.AuditService.Log(ctx, common_models.AuditActionLogin, "user", dbUser.NIC, dbUser.NIC, nil)

	return &LoginResult{
		Token:    token,
		Role:     dbUser.Role,
		FullName: dbUser.FullName,
	}, nil
}

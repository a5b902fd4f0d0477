package admin

import (
	"context"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/audit"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// OfficerSummary is the flattened officer row the admin console lists.
type OfficerSummary struct {
	ID       string             `json:"id"`
	FullName string             `json:"fullname"`
	NIC      string             `json:"nic"`
	Role     common_models.Role `json:"role"`
	Email    string             `json:"email"`
	Division string             `json:"division"`
}

type AdminService interface {
	ListOfficers(ctx context.Context) ([]OfficerSummary, error)
	RemoveOfficer(ctx context.Context, actorNIC, userID string) error
}

type AdminServiceImpl struct {
	Users user.UserRepository
	Audit audit.AuditService
}

func NewAdminService(users user.UserRepository, auditSvc audit.AuditService) AdminService {
	return &AdminServiceImpl{Users: users, Audit: auditSvc}
}

func (s *AdminServiceImpl) ListOfficers(ctx context.Context) ([]OfficerSummary, error) {
	users, err := s.Users.Find(ctx, user.OfficerFilter())
	if err != nil {
		return nil, err
	}

	officers := make([]OfficerSummary, 0, len(users))
	for _, u := range users {
		division := u.Division
		if division == "" {
			division = "General"
		}
		officers = append(officers, OfficerSummary{
			ID:       u.ID.Hex(),
			FullName: u.FullName,
			NIC:      u.NIC,
			Role:     u.Role,
			Email:    u.Email,
			Division: division,
		})
	}
	return officers, nil
}

func (s *AdminServiceImpl) RemoveOfficer(ctx context.Context, actorNIC, userID string) error {
	if err := s.Users.DeleteByID(ctx, userID); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NotFound("user %s not found", userID)
		}
		return err
	}

	s.Audit.Log(ctx, common_models.AuditActionDelete, "user", userID, actorNIC, nil)
	return nil
}

package directory

import (
	"context"
	"slices"
	"time"

	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type DirectoryService interface {
	// ResolveInitialAssignment finds the GS serving the applicant's section
	// and the DS over that GS's division. Missing links are soft failures:
	// the corresponding field stays nil and no error is returned, so a
	// directory gap never blocks a citizen from applying.
	ResolveInitialAssignment(ctx context.Context, applicant *user.User) (Assignment, error)

	// AddSubordinate creates an account one level below the creator,
	// inheriting the creator's placement.
	AddSubordinate(ctx context.Context, creatorNIC string, actor NewActor) (*user.User, error)

	// Reassign moves an existing actor to a new placement and supervisor.
	Reassign(ctx context.Context, nic string, placement Placement, reportsTo string) error

	Divisions(ctx context.Context) ([]DivisionSummary, error)
	OfficersReportingTo(ctx context.Context, supervisor *user.User) ([]user.User, error)
	VillagersOf(ctx context.Context, gs *user.User) ([]user.User, error)
}

type Placement struct {
	Province string `json:"province"`
	District string `json:"district"`
	Division string `json:"division"`
	Section  string `json:"section"`
}

type DivisionSummary struct {
	Division string `json:"division"`
	DSName   string `json:"ds_name"`
	DSNIC    string `json:"ds_nic"`
	District string `json:"district"`
}

type DirectoryServiceImpl struct {
	UserRepo user.UserRepository
	Logger   *zap.Logger
}

func NewDirectoryService(userRepo user.UserRepository, logger *zap.Logger) DirectoryService {
	return &DirectoryServiceImpl{UserRepo: userRepo, Logger: logger}
}

func (s *DirectoryServiceImpl) ResolveInitialAssignment(ctx context.Context, applicant *user.User) (Assignment, error) {
	var assignment Assignment

	if applicant == nil || applicant.Section == "" {
		return assignment, nil
	}

	gs, err := s.UserRepo.FindOne(ctx, bson.M{
		"role":    common_models.RoleGS,
		"section": applicant.Section,
	})
	if err != nil {
		return assignment, err
	}
	if gs == nil {
		s.Logger.Warn("no GS registered for section",
			zap.String("section", applicant.Section),
			zap.String("applicant", applicant.NIC))
		return assignment, nil
	}
	assignment.GS = gs

	if gs.Division == "" {
		return assignment, nil
	}
	ds, err := s.UserRepo.FindOne(ctx, bson.M{
		"role":     common_models.RoleDS,
		"division": gs.Division,
	})
	if err != nil {
		return assignment, err
	}
	if ds == nil {
		s.Logger.Warn("no DS registered for division",
			zap.String("division", gs.Division))
		return assignment, nil
	}
	assignment.DS = ds

	return assignment, nil
}

func (s *DirectoryServiceImpl) AddSubordinate(ctx context.Context, creatorNIC string, actor NewActor) (*user.User, error) {
	creator, err := s.UserRepo.FindByNIC(ctx, creatorNIC)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, apperr.NotFound("creator %s not found", creatorNIC)
	}

	if actor.NIC == "" || actor.FullName == "" || actor.Password == "" {
		return nil, apperr.Validation(apperr.CodeMalformedRequest, "fullname, nic and password are required")
	}
	if actor.Role == "" {
		actor.Role = common_models.RoleCitizen
	}

	if creator.Role != common_models.RoleAdmin {
		allowed := creatableRoles[creator.Role]
		if !slices.Contains(allowed, actor.Role) {
			return nil, apperr.Authorization(apperr.CodeRoleNotPermitted,
				"role %s cannot create %s accounts", creator.Role, actor.Role)
		}
	}

	existing, err := s.UserRepo.FindByNIC(ctx, actor.NIC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(apperr.CodeDuplicateIdentity, "NIC %s already registered", actor.NIC)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(actor.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := user.User{
		FullName:       actor.FullName,
		NIC:            actor.NIC,
		Phone:          actor.Phone,
		Email:          actor.Email,
		HashedPassword: string(hashed),
		Role:           actor.Role,
		Province:       creator.Province,
		District:       creator.District,
		Division:       creator.Division,
		Section:        creator.Section,
		Address:        actor.Address,
		CreatedAt:      time.Now().UTC(),
	}
	// Citizens are resolved by section match, not reports_to
	if actor.Role != common_models.RoleCitizen {
		newUser.ReportsTo = creator.NIC
	}

	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}
	return &newUser, nil
}

func (s *DirectoryServiceImpl) Reassign(ctx context.Context, nic string, placement Placement, reportsTo string) error {
	existing, err := s.UserRepo.FindByNIC(ctx, nic)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("user %s not found", nic)
	}

	return s.UserRepo.UpdateByNIC(ctx, nic, bson.M{
		"province":   placement.Province,
		"district":   placement.District,
		"division":   placement.Division,
		"section":    placement.Section,
		"reports_to": reportsTo,
	})
}

func (s *DirectoryServiceImpl) Divisions(ctx context.Context) ([]DivisionSummary, error) {
	dsOfficers, err := s.UserRepo.Find(ctx, bson.M{"role": common_models.RoleDS})
	if err != nil {
		return nil, err
	}

	summaries := make([]DivisionSummary, 0, len(dsOfficers))
	for _, ds := range dsOfficers {
		summaries = append(summaries, DivisionSummary{
			Division: ds.Division,
			DSName:   ds.FullName,
			DSNIC:    ds.NIC,
			District: ds.District,
		})
	}
	return summaries, nil
}

func (s *DirectoryServiceImpl) OfficersReportingTo(ctx context.Context, supervisor *user.User) ([]user.User, error) {
	return s.UserRepo.Find(ctx, bson.M{"reports_to": supervisor.NIC})
}

func (s *DirectoryServiceImpl) VillagersOf(ctx context.Context, gs *user.User) ([]user.User, error) {
	filter := bson.M{"role": common_models.RoleCitizen}
	if gs.Section != "" {
		filter["section"] = gs.Section
	}
	return s.UserRepo.Find(ctx, filter)
}

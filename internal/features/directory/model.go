package directory

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/user"
)

// Assignment is the result of resolving which officers are responsible for
// an applicant. Either field may be nil when the directory has a gap; the
// application is still created and picked up from the stage's generic queue.
type Assignment struct {
	GS *user.User
	DS *user.User
}

// NewActor is the payload for creating a subordinate account. Placement is
// inherited from the creator, never taken from the request.
type NewActor struct {
	FullName string             `json:"fullname"`
	NIC      string             `json:"nic"`
	Phone    string             `json:"phone"`
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Address  string             `json:"address"`
	Role     common_models.Role `json:"role"`
}

// creatableRoles is the subordinate-creation permission table. Admin may
// create any role.
var creatableRoles = map[common_models.Role][]common_models.Role{
	common_models.RoleGS:       {common_models.RoleCitizen},
	common_models.RoleDS:       {common_models.RoleGS},
	common_models.RoleDistrict: {common_models.RoleDS},
	common_models.RoleMinistry: {common_models.RoleDistrict},
}

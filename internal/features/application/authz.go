package application

import (
	"go-citizen/internal/common/apperr"
	common_models "go-citizen/internal/common/models"
)

// Operation names a workflow engine entry point for authorization purposes.
type Operation string

const (
	OpCreate       Operation = "create"
	OpAdvance      Operation = "advance"
	OpBatchAdvance Operation = "batch_advance"
	OpWithdraw     Operation = "withdraw"
	OpQueue        Operation = "queue"
	OpIssuedList   Operation = "issued_list"
	OpEscalate     Operation = "escalate"
	OpDeescalate   Operation = "deescalate"
)

// opRoles is the single authorization table for the engine. Role checks live
// here, not scattered across transport handlers. Stage-level matching on
// Advance is checked separately against the application's current stage.
var opRoles = map[Operation][]common_models.Role{
	OpCreate: {common_models.RoleCitizen},
	OpAdvance: {
		common_models.RoleGS, common_models.RoleDS,
		common_models.RoleDistrict, common_models.RoleMinistry,
	},
	OpBatchAdvance: {
		common_models.RoleGS, common_models.RoleDS,
		common_models.RoleDistrict, common_models.RoleMinistry,
	},
	OpWithdraw: {
		common_models.RoleCitizen,
		common_models.RoleGS, common_models.RoleDS,
		common_models.RoleDistrict, common_models.RoleMinistry,
	},
	OpQueue: {
		common_models.RoleGS, common_models.RoleDS,
		common_models.RoleDistrict, common_models.RoleMinistry,
	},
	OpIssuedList: {
		common_models.RoleGS, common_models.RoleDS,
		common_models.RoleDistrict, common_models.RoleMinistry,
	},
	OpEscalate: {
		common_models.RoleGS, common_models.RoleDS,
		common_models.RoleDistrict, common_models.RoleMinistry,
	},
	OpDeescalate: {}, // admin only
}

// authorize checks the operation table. Admin passes everything.
func authorize(op Operation, role common_models.Role) error {
	if role == common_models.RoleAdmin {
		return nil
	}
	for _, allowed := range opRoles[op] {
		if allowed == role {
			return nil
		}
	}
	return apperr.Authorization(apperr.CodeRoleNotPermitted, "role %s may not perform %s", role, op)
}

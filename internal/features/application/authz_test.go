package application

import (
	"testing"

	common_models "go-citizen/internal/common/models"
)

func TestAuthorizeTable(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		role    common_models.Role
		allowed bool
	}{
		{"citizen creates", OpCreate, common_models.RoleCitizen, true},
		{"gs cannot create", OpCreate, common_models.RoleGS, false},
		{"admin creates", OpCreate, common_models.RoleAdmin, true},

		{"gs advances", OpAdvance, common_models.RoleGS, true},
		{"ministry advances", OpAdvance, common_models.RoleMinistry, true},
		{"citizen cannot advance", OpAdvance, common_models.RoleCitizen, false},

		{"ds batch advances", OpBatchAdvance, common_models.RoleDS, true},
		{"citizen cannot batch", OpBatchAdvance, common_models.RoleCitizen, false},

		{"citizen withdraws", OpWithdraw, common_models.RoleCitizen, true},
		{"district withdraws", OpWithdraw, common_models.RoleDistrict, true},

		{"gs reads queue", OpQueue, common_models.RoleGS, true},
		{"citizen cannot read queue", OpQueue, common_models.RoleCitizen, false},

		{"ds lists issued certificates", OpIssuedList, common_models.RoleDS, true},
		{"citizen cannot list issued", OpIssuedList, common_models.RoleCitizen, false},

		{"ds escalates", OpEscalate, common_models.RoleDS, true},
		{"citizen cannot escalate", OpEscalate, common_models.RoleCitizen, false},

		{"only admin deescalates", OpDeescalate, common_models.RoleMinistry, false},
		{"admin deescalates", OpDeescalate, common_models.RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorize(tt.op, tt.role)
			if tt.allowed && err != nil {
				t.Errorf("expected %s/%s to be allowed, got %v", tt.op, tt.role, err)
			}
			if !tt.allowed && err == nil {
				t.Errorf("expected %s/%s to be denied", tt.op, tt.role)
			}
		})
	}
}

package dashboard

import (
	"context"
	"strings"

	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/database"
	"go-citizen/internal/features/application"
	"go-citizen/internal/features/land"
	"go-citizen/internal/features/policy"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type GSStats struct {
	Pending   int64 `json:"pending"`
	Villagers int64 `json:"villagers"`
	Approved  int64 `json:"approved"`
	Disputes  int64 `json:"disputes"`
}

type DSStats struct {
	Pending  int64   `json:"pending"`
	Approved int64   `json:"approved"`
	Rejected int64   `json:"rejected"`
	Revenue  float64 `json:"revenue"`
}

type RevenueLine struct {
	Service string  `json:"service"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type RevenueStats struct {
	TotalRevenue float64       `json:"total_revenue"`
	Breakdown    []RevenueLine `json:"breakdown"`
}

type SystemStats struct {
	Citizens     int64               `json:"citizens"`
	Transactions int64               `json:"transactions"`
	Revenue      float64             `json:"revenue"`
	Health       string              `json:"health"`
	Logs         []common_models.Log `json:"logs"`
}

// fallback fee used when a completed application references a service that
// has since been removed from the catalogue
const defaultFee = 1500

type DashboardService interface {
	GSStats(ctx context.Context) (*GSStats, error)
	DSStats(ctx context.Context) (*DSStats, error)
	Revenue(ctx context.Context) (*RevenueStats, error)
	ExportRevenue(ctx context.Context) ([]byte, string, error)
	SystemStats(ctx context.Context) (*SystemStats, error)
}

type DashboardServiceImpl struct {
	Apps     application.ApplicationRepository
	Users    user.UserRepository
	Land     land.LandService
	Policies policy.PolicyService
	Logs     *mongo.Collection
	Logger   *zap.Logger
}

func NewDashboardService(
	apps application.ApplicationRepository,
	users user.UserRepository,
	landSvc land.LandService,
	policies policy.PolicyService,
	mongodb *database.MongodbDB,
	logger *zap.Logger,
) DashboardService {
	return &DashboardServiceImpl{
		Apps:     apps,
		Users:    users,
		Land:     landSvc,
		Policies: policies,
		Logs:     mongodb.DB.Collection("logs"),
		Logger:   logger,
	}
}

func (s *DashboardServiceImpl) GSStats(ctx context.Context) (*GSStats, error) {
	pending, err := s.Apps.Count(ctx, bson.M{"status": common_models.StatusPending})
	if err != nil {
		return nil, err
	}
	approved, err := s.Apps.Count(ctx, bson.M{"status": common_models.StatusCompleted})
	if err != nil {
		return nil, err
	}
	villagers, err := s.Users.Count(ctx, bson.M{"role": common_models.RoleCitizen})
	if err != nil {
		return nil, err
	}
	disputes, err := s.Land.ActiveCount(ctx)
	if err != nil {
		return nil, err
	}
	return &GSStats{
		Pending:   pending,
		Villagers: villagers,
		Approved:  approved,
		Disputes:  disputes,
	}, nil
}

func (s *DashboardServiceImpl) DSStats(ctx context.Context) (*DSStats, error) {
	pending, err := s.Apps.Count(ctx, bson.M{"status": common_models.StatusPending})
	if err != nil {
		return nil, err
	}
	approved, err := s.Apps.Count(ctx, bson.M{"status": common_models.StatusCompleted})
	if err != nil {
		return nil, err
	}
	rejected, err := s.Apps.Count(ctx, bson.M{"status": common_models.StatusRejected})
	if err != nil {
		return nil, err
	}

	revenue, err := s.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	return &DSStats{
		Pending:  pending,
		Approved: approved,
		Rejected: rejected,
		Revenue:  revenue.TotalRevenue,
	}, nil
}

// Revenue groups completed applications by service type and prices each
// group from the service catalogue.
func (s *DashboardServiceImpl) Revenue(ctx context.Context) (*RevenueStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": common_models.StatusCompleted}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$service_type",
			"count": bson.M{"$sum": 1},
		}}},
	}

	groups, err := s.Apps.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	fees := s.feeTable(ctx)

	stats := &RevenueStats{Breakdown: []RevenueLine{}}
	for _, group := range groups {
		service, _ := group["_id"].(string)
		count := toInt64(group["count"])

		fee := lookupFee(fees, service)
		revenue := float64(count) * fee
		stats.TotalRevenue += revenue
		stats.Breakdown = append(stats.Breakdown, RevenueLine{
			Service: service,
			Count:   count,
			Revenue: revenue,
		})
	}
	return stats, nil
}

func (s *DashboardServiceImpl) SystemStats(ctx context.Context) (*SystemStats, error) {
	citizens, err := s.Users.Count(ctx, bson.M{"role": common_models.RoleCitizen})
	if err != nil {
		return nil, err
	}
	transactions, err := s.Apps.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	revenue, err := s.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	logs := s.recentLogs(ctx, 20)

	return &SystemStats{
		Citizens:     citizens,
		Transactions: transactions,
		Revenue:      revenue.TotalRevenue,
		Health:       "Operational",
		Logs:         logs,
	}, nil
}

// recentLogs is best effort. A broken log collection must not take the
// dashboard down.
func (s *DashboardServiceImpl) recentLogs(ctx context.Context, limit int64) []common_models.Log {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_on_utc", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.Logs.Find(ctx, bson.M{}, opts)
	if err != nil {
		s.Logger.Warn("failed to read recent logs", zap.Error(err))
		return []common_models.Log{}
	}
	defer cursor.Close(ctx)

	var logs []common_models.Log
	if err = cursor.All(ctx, &logs); err != nil {
		s.Logger.Warn("failed to decode recent logs", zap.Error(err))
		return []common_models.Log{}
	}
	if logs == nil {
		logs = []common_models.Log{}
	}
	return logs
}

func (s *DashboardServiceImpl) feeTable(ctx context.Context) map[string]float64 {
	fees := map[string]float64{}
	policies, err := s.Policies.ListPolicies(ctx)
	if err != nil {
		s.Logger.Warn("failed to load fee table", zap.Error(err))
		return fees
	}
	for _, pol := range policies {
		fees[pol.Name] = pol.Fee
	}
	return fees
}

func lookupFee(fees map[string]float64, service string) float64 {
	if fee, ok := fees[service]; ok {
		return fee
	}
	// tolerate renamed services by partial match
	for name, fee := range fees {
		if strings.Contains(service, name) || strings.Contains(name, service) {
			return fee
		}
	}
	return defaultFee
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

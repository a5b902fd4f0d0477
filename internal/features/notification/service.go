package notification

import (
	"context"
	"fmt"
	"time"

	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/features/application"

	"go.uber.org/zap"
)

type NotificationService interface {
	application.TransitionListener

	Notify(ctx context.Context, recipientNIC, title, message string)
	ListForRecipient(ctx context.Context, nic string) ([]Notification, error)
	MarkRead(ctx context.Context, id, nic string) error
}

type NotificationServiceImpl struct {
	Repo   NotificationRepository
	Hub    *Hub
	Logger *zap.Logger
}

func NewNotificationService(repo NotificationRepository, hub *Hub, logger *zap.Logger) NotificationService {
	return &NotificationServiceImpl{Repo: repo, Hub: hub, Logger: logger}
}

func (s *NotificationServiceImpl) Notify(ctx context.Context, recipientNIC, title, message string) {
	if recipientNIC == "" {
		return
	}
	n := Notification{
		RecipientNIC: recipientNIC,
		Title:        title,
		Message:      message,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, n); err != nil {
		s.Logger.Warn("failed to persist notification",
			zap.String("recipient", recipientNIC), zap.Error(err))
	}
	s.Hub.Push(n)
}

// ApplicationSubmitted tells the assigned GS a new application is waiting.
func (s *NotificationServiceImpl) ApplicationSubmitted(ctx context.Context, app *application.Application) {
	s.Notify(ctx, app.AssignedGS, "New application",
		fmt.Sprintf("%s submitted a %s application", app.ApplicantName, app.ServiceType))
}

// DecisionRecorded tells the applicant about every decision, and the next
// stage's assigned officer when the chain moves on to the DS.
func (s *NotificationServiceImpl) DecisionRecorded(ctx context.Context, app *application.Application, entry application.Decision) {
	s.Notify(ctx, app.ApplicantNIC,
		fmt.Sprintf("Application %s", entry.Action),
		fmt.Sprintf("Your %s application is now %s (stage: %s)", app.ServiceType, app.Status, app.CurrentStage))

	if app.Status == common_models.StatusPending && app.CurrentStage == string(common_models.RoleDS) {
		s.Notify(ctx, app.AssignedDS, "Application awaiting review",
			fmt.Sprintf("%s application from %s reached your queue", app.ServiceType, app.ApplicantName))
	}
}

func (s *NotificationServiceImpl) ListForRecipient(ctx context.Context, nic string) ([]Notification, error) {
	return s.Repo.ListForRecipient(ctx, nic)
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id, nic string) error {
	return s.Repo.MarkRead(ctx, id, nic)
}

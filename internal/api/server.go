package api

import (
	"github.com/cogniflow/cogniflow/internal/db"
	"github.com/cogniflow/cogniflow/internal/knowledge"
	"github.com/cogniflow/cogniflow/internal/repository"
	"github.com/cogniflow/cogniflow/internal/services"
	"github.com/cogniflow/cogniflow/internal/worker"
)

type Server struct {
	DB              *db.DB
	UserService     services.UserService
	ProgressService services.ProgressService
	ProgressRepo    repository.ProgressRepository
	Assistant       *knowledge.Responder
	MaintenancePool *worker.Pool
}

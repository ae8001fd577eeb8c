package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"asset-manager-api/internal/application/ports"
	"asset-manager-api/internal/interface/api/rest/middleware"
)

type AdminController struct {
	syncer ports.SchemaSyncer
	logger *zap.Logger
}

func NewAdminController(
	r *gin.Engine,
	syncer ports.SchemaSyncer,
	logger *zap.Logger,
	adminTokenHash string,
) *AdminController {
	ac := &AdminController{
		syncer: syncer,
		logger: logger,
	}

	r.POST(RouteSyncSchema, middleware.AdminGuard(adminTokenHash), ac.SyncSchemaHandler)

	return ac
}

// SyncSchemaHandler acknowledges immediately; the sync itself runs in
// the background worker and can outlive this request.
func (ac *AdminController) SyncSchemaHandler(c *gin.Context) {
	if !ac.syncer.Trigger() {
		respondData(c, http.StatusAccepted, gin.H{"status": "already scheduled"})
		return
	}

	ac.logger.Info("schema sync scheduled")
	respondData(c, http.StatusAccepted, gin.H{"status": "scheduled"})
}

package handler

import (
	"github.com/topkorzone/sellsync-sub002/internal/adapter/http/dto"
	"github.com/topkorzone/sellsync-sub002/internal/core/ports"
	"github.com/topkorzone/sellsync-sub002/pkg/response"

	"github.com/gin-gonic/gin"
)

// CredentialsHandler exposes the tenant credential pre-flight check. Operators
// call it after rotating a tenant's ERP auth key, before effects start failing.
type CredentialsHandler struct {
	erp   ports.ErpClient
	creds ports.CredentialSource
}

// NewCredentialsHandler creates a new CredentialsHandler.
func NewCredentialsHandler(erp ports.ErpClient, creds ports.CredentialSource) *CredentialsHandler {
	return &CredentialsHandler{erp: erp, creds: creds}
}

// Check handles POST /api/v1/credentials/check — verifies the tenant's ERP
// credentials without posting anything.
func (h *CredentialsHandler) Check(c *gin.Context) {
	tenantID, ok := tenantFrom(c)
	if !ok {
		return
	}

	creds, err := h.creds.ForTenant(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	valid, err := h.erp.TestAuth(c.Request.Context(), creds)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CredentialsCheckResponse{Valid: valid})
}

package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-directory/internal/interface/http"
)

type CredentialModule struct {
	Handler *handlers.CredentialHandler
}

func NewCredentialModule(h *handlers.CredentialHandler) *CredentialModule {
	return &CredentialModule{Handler: h}
}

func (m *CredentialModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)
}

package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-directory/internal/interface/http"
)

// DirectoryModule serves the directory record routes:
// POST/GET /api/users, GET/PUT/DELETE /api/users/:id,
// plus the legacy POST / and GET / aliases for add and list.
type DirectoryModule struct {
	Handler *handlers.DirectoryHandler
}

func NewDirectoryModule(h *handlers.DirectoryHandler) *DirectoryModule {
	return &DirectoryModule{Handler: h}
}

func (m *DirectoryModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", m.Handler.Add)
		users.GET("", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
		users.PUT("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}

func (m *DirectoryModule) RegisterRoot(rg *gin.RouterGroup) {
	rg.POST("/", m.Handler.Add)
	rg.GET("/", m.Handler.List)
}

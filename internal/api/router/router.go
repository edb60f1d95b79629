package router

import (
	"videolocale-go/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Setup 注册页面路由
func Setup(r *gin.Engine, pageHandler *handler.PageHandler) {
	r.GET("/", pageHandler.Index)
	r.POST("/generate", pageHandler.Generate)
	r.GET("/playlist/:id", pageHandler.Playlist)

	r.NoRoute(pageHandler.NotFound)
}

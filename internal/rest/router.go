package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/sg41/api/docs" // nolint: revive
	"github.com/sergeii/sg41/internal/rest/api"
	"github.com/sergeii/sg41/internal/validation"
)

func NewRouter(a *api.API) (*gin.Engine, error) {
	// request models rely on the same cam pattern rules as the use cases
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			return nil, err
		}
	}

	router := gin.Default()
	router.GET("/status", a.Status)

	keys := router.Group("/api/keys")
	keys.GET("", a.ListKeys)
	keys.POST("", a.AddKey)
	keys.POST("/generate", a.GenerateKey)
	keys.GET("/:slug", a.ViewKey)
	keys.DELETE("/:slug", a.RemoveKey)
	keys.POST("/:slug/encrypt", a.EncryptMessage)
	keys.POST("/:slug/decrypt", a.DecryptMessage)
	keys.POST("/:slug/wheelset", a.RecoverIndicator)

	router.GET("/api/messages", a.ListMessages)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router, nil
}

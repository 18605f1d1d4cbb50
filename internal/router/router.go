package router

import (
	"planner-go/internal/config"
	"planner-go/internal/handler"
	"planner-go/internal/middleware"
	"planner-go/internal/permission"
	"planner-go/internal/repository"
	"planner-go/internal/service"
	"planner-go/internal/utils"
	"planner-go/pkg/tokenstore"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	tokens *tokenstore.TokenStore,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "户外活动规划系统 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	allergenRepo := repository.NewAllergenRepository(db)
	userActivityRepo := repository.NewUserActivityRepository(db)
	userAllergenRepo := repository.NewUserAllergenRepository(db)
	plannedRepo := repository.NewPlannedActivityRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager, tokens, cfg)
	userService := service.NewUserService(userRepo, tokens)
	catalogService := service.NewCatalogService(activityRepo, allergenRepo)
	selectionService := service.NewSelectionService(userActivityRepo, userAllergenRepo, activityRepo, allergenRepo)
	plannerService := service.NewPlannerService(plannedRepo, activityRepo)
	weatherService := service.NewWeatherService(&cfg.Weather)

	// 每类资源在此处绑定权限策略
	ownerPolicy := permission.OwnerOrAdminPolicy{}
	catalogPolicy := permission.CatalogPolicy{}

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService, cfg)
	userHandler := handler.NewUserHandler(userService, ownerPolicy)
	activityHandler := handler.NewActivityHandler(catalogService, catalogPolicy)
	allergenHandler := handler.NewAllergenHandler(catalogService, catalogPolicy)
	selectionHandler := handler.NewSelectionHandler(selectionService, ownerPolicy)
	plannedHandler := handler.NewPlannedHandler(plannerService, ownerPolicy)
	weatherHandler := handler.NewWeatherHandler(weatherService)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/refresh", authHandler.Refresh)
		api.POST("/recover-password", authHandler.RecoverPassword)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			// 账户
			authorized.POST("/logout", authHandler.Logout)
			authorized.GET("/account", userHandler.GetAccount)
			authorized.PATCH("/account", userHandler.UpdateAccount)
			authorized.DELETE("/account", userHandler.DeleteAccount)

			// 用户资源(策略内部限制：list仅管理员，其余归属者或管理员)
			authorized.GET("/users", userHandler.List)
			authorized.GET("/users/:id", userHandler.Retrieve)
			authorized.PUT("/users/:id", userHandler.Update)
			authorized.PATCH("/users/:id", userHandler.Update)
			authorized.DELETE("/users/:id", userHandler.Destroy)

			// 活动目录
			authorized.GET("/activities", activityHandler.List)
			authorized.GET("/activities/:id", activityHandler.Retrieve)
			authorized.POST("/activities", activityHandler.Create)
			authorized.PUT("/activities/:id", activityHandler.Update)
			authorized.PATCH("/activities/:id", activityHandler.Update)
			authorized.DELETE("/activities/:id", activityHandler.Destroy)

			// 过敏原目录
			authorized.GET("/allergens", allergenHandler.List)
			authorized.GET("/allergens/:id", allergenHandler.Retrieve)
			authorized.POST("/allergens", allergenHandler.Create)
			authorized.PUT("/allergens/:id", allergenHandler.Update)
			authorized.PATCH("/allergens/:id", allergenHandler.Update)
			authorized.DELETE("/allergens/:id", allergenHandler.Destroy)

			// 用户-活动关联
			authorized.GET("/user-activities", selectionHandler.ListUserActivities)
			authorized.POST("/user-activities", selectionHandler.CreateUserActivity)
			authorized.GET("/user-activities/:id", selectionHandler.RetrieveUserActivity)
			authorized.DELETE("/user-activities/:id", selectionHandler.DestroyUserActivity)

			// 用户-过敏原关联
			authorized.GET("/user-allergens", selectionHandler.ListUserAllergens)
			authorized.POST("/user-allergens", selectionHandler.CreateUserAllergen)
			authorized.GET("/user-allergens/:id", selectionHandler.RetrieveUserAllergen)
			authorized.DELETE("/user-allergens/:id", selectionHandler.DestroyUserAllergen)

			// 当前用户选择
			authorized.GET("/my/activities", selectionHandler.ListOwnActivities)
			authorized.PUT("/my/activities", selectionHandler.ReplaceOwnActivities)
			authorized.GET("/my/allergens", selectionHandler.ListOwnAllergens)
			authorized.PUT("/my/allergens", selectionHandler.ReplaceOwnAllergens)

			// 计划活动
			authorized.GET("/planned-activities", plannedHandler.List)
			authorized.POST("/planned-activities", plannedHandler.Create)
			authorized.GET("/planned-activities/:id", plannedHandler.Retrieve)
			authorized.PUT("/planned-activities/:id", plannedHandler.Update)
			authorized.PATCH("/planned-activities/:id", plannedHandler.Update)
			authorized.DELETE("/planned-activities/:id", plannedHandler.Destroy)
			authorized.GET("/my/planned", plannedHandler.ListOwn)

			// 天气网关
			authorized.GET("/weather/current", weatherHandler.Current)
			authorized.GET("/weather/forecast", weatherHandler.Forecast)
			authorized.GET("/weather/geocode", weatherHandler.Geocode)
			authorized.GET("/weather/pollution", weatherHandler.Pollution)
		}
	}

	return r
}

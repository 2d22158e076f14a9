package httpserver

import (
	accountHTTP "auth-srv/internal/account/delivery/http"
	accountUC "auth-srv/internal/account/usecase"
	authHTTP "auth-srv/internal/authentication/delivery/http"
	authUC "auth-srv/internal/authentication/usecase"
	"auth-srv/internal/middleware"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "auth-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.jwtManager)

	srv.gin.Use(
		mw.Logging(),
		mw.Recovery(srv.discord),
		middleware.CORS(srv.cors),
	)

	// Public service endpoints
	srv.gin.GET("/", srv.banner)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET(Api+"/info", srv.info)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	srv.gin.NoRoute(srv.notFound)

	// Usecases
	authUsecase := authUC.New(srv.l, srv.userRepo, srv.jwtManager)
	accountUsecase := accountUC.New(srv.l)

	// Handlers
	authHandler := authHTTP.New(srv.l, authUsecase, srv.discord)
	accountHandler := accountHTTP.New(srv.l, accountUsecase, srv.discord)

	api := srv.gin.Group(Api)
	authHandler.MapRoutes(api)
	accountHandler.MapRoutes(api, mw)
}

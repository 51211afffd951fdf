package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"simconnect/cmd/fx/advisor_fx"
	"simconnect/cmd/fx/catalog_fx"
	"simconnect/cmd/fx/contribution_fx"
	"simconnect/cmd/fx/db_fx"
	"simconnect/cmd/fx/estimator_fx"
	"simconnect/cmd/fx/profile_fx"
	"simconnect/internal/api/controllers"
	"simconnect/pkg/middleware"
	"simconnect/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		profile_fx.Module,
		contribution_fx.Module,
		estimator_fx.Module,
		advisor_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := utils.GetEnvWithDefault("PORT", "8080")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	countriesController *controllers.CountriesController,
	operatorsController *controllers.OperatorsController,
	plansController *controllers.PlansController,
	profileController *controllers.ProfileController,
	estimatorController *controllers.EstimatorController,
	advisorController *controllers.AdvisorController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		countriesController,
		operatorsController,
		plansController,
		profileController,
		estimatorController,
		advisorController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	countriesController *controllers.CountriesController,
	operatorsController *controllers.OperatorsController,
	plansController *controllers.PlansController,
	profileController *controllers.ProfileController,
	estimatorController *controllers.EstimatorController,
	advisorController *controllers.AdvisorController) {

	countries := r.Group("/countries")
	countries.GET("", countriesController.ListCountries)
	countries.GET("/:id/operators", countriesController.ListCountryOperators)

	operators := r.Group("/operators")
	operators.GET("", operatorsController.ListOperators)
	operators.POST("", operatorsController.AddOperator)
	operators.GET("/:id/plans", operatorsController.ListOperatorPlans)

	plans := r.Group("/plans")
	plans.GET("", plansController.ListPlans)
	plans.POST("", plansController.AddPlan)
	plans.GET("/compare", plansController.ComparePlans)
	plans.GET("/:id/reviews", plansController.ListReviews)
	plans.POST("/:id/reviews", plansController.AddReview)

	r.GET("/profile", profileController.GetProfile)
	r.POST("/estimate", estimatorController.Estimate)
	r.POST("/advice", advisorController.Advise)
}

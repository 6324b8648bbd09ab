package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"edugo/cmd/fx/bookingfx"
	"edugo/cmd/fx/catalogfx"
	"edugo/cmd/fx/contentfx"
	"edugo/cmd/fx/dbfx"
	"edugo/cmd/fx/mailfx"
	"edugo/cmd/fx/quizfx"
	"edugo/internal/api/controllers"
	"edugo/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	app := fx.New(
		dbfx.Module,
		catalogfx.Module,
		contentfx.Module,
		quizfx.Module,
		mailfx.Module,
		bookingfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
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
	programsController *controllers.ProgramsController,
	contentController *controllers.ContentController,
	articlesController *controllers.ArticlesController,
	quizController *controllers.QuizController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Trace-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	RegisterRoutes(r, programsController, contentController, articlesController, quizController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	programsController *controllers.ProgramsController,
	contentController *controllers.ContentController,
	articlesController *controllers.ArticlesController,
	quizController *controllers.QuizController,
	bookingController *controllers.BookingController) {

	programsGroup := r.Group("/programs")
	programsGroup.GET("", programsController.ListPrograms)
	programsGroup.GET("/:id", programsController.GetProgramByID)

	r.GET("/team", contentController.ListTeamMembers)
	r.GET("/testimonials", contentController.ListTestimonials)
	r.GET("/faqs", contentController.ListFAQs)
	r.GET("/news", contentController.ListNews)

	articlesGroup := r.Group("/articles")
	articlesGroup.GET("", articlesController.ListArticles)
	articlesGroup.GET("/:id", articlesController.GetArticleByID)

	quizGroup := r.Group("/quiz")
	quizGroup.POST("/start", quizController.StartQuizHandler)
	quizGroup.POST("/answer", quizController.AnswerHandler)
	quizGroup.POST("/advance", quizController.AdvanceHandler)
	quizGroup.POST("/back", quizController.RetreatHandler)
	quizGroup.POST("/reset", quizController.ResetHandler)
	quizGroup.GET("/:sessionId/result", quizController.ResultHandler)

	r.POST("/bookings", bookingController.SubmitBooking)
	r.POST("/contact", bookingController.SubmitContact)
}

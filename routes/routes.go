package routes

import (
	"log"
	"net/http"

	"flatquiz/handlers"
	"flatquiz/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin checks are left to the CORS layer
	},
}

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	questionHandler *handlers.QuestionHandler,
	healthHandler *handlers.HealthHandler,
	hub *services.Hub,
) {
	api := router.Group("/api")
	{
		// Quiz taking
		api.GET("/questions", quizHandler.GetQuestions)
		api.POST("/submit", quizHandler.SubmitAnswers)
		api.GET("/results/recent", quizHandler.GetRecentResults)

		// Question administration
		admin := api.Group("/admin/questions")
		{
			admin.GET("", questionHandler.GetQuestions)
			admin.POST("", questionHandler.CreateQuestion)
			admin.GET("/:id", questionHandler.GetQuestionByID)
			admin.PUT("/:id", questionHandler.UpdateQuestion)
			admin.DELETE("/:id", questionHandler.DeleteQuestion)
		}
	}

	// Live question updates for open admin pages
	router.GET("/ws/admin", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}
		hub.RegisterClient(conn)
	})

	router.GET("/health", healthHandler.Health)
}

package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Instrumentation provides request metrics and their exposition endpoint.
type Instrumentation interface {
	Middleware() gin.HandlerFunc
	Handler() gin.HandlerFunc
}

// NewRouter wires middleware and routes. instr may be nil.
func NewRouter(h *Handler, instr Instrumentation, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(CORS(), RequestID())
	// Metrics wrap Recovery so recovered panics are counted as 500s.
	if instr != nil {
		r.Use(instr.Middleware())
	}
	r.Use(Recovery(logger), Logger(logger))

	r.NoRoute(notFound)
	r.NoMethod(methodNotAllowed)

	r.GET("/health", h.Health)
	if instr != nil {
		r.GET("/metrics", instr.Handler())
	}

	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:id/questions", h.CategoryQuestions)

	r.GET("/questions", h.ListQuestions)
	r.POST("/questions", h.PostQuestions)
	r.POST("/questions/search", h.SearchQuestions)
	r.DELETE("/questions/:id", h.DeleteQuestion)

	r.POST("/play", h.PlayQuiz)
	r.POST("/quizzes", h.PlayQuiz)

	return r
}

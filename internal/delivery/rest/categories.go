package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

// ListCategories handles GET /categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(categories) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"categories":       entities.CategoryMap(categories),
		"total_categories": len(categories),
	})
}

// CategoryQuestions handles GET /categories/:id/questions.
func (h *Handler) CategoryQuestions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	category, questions, err := h.questions.ByCategory(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        nonNil(questions),
		"total_questions":  len(questions),
		"current_category": category.Type,
	})
}

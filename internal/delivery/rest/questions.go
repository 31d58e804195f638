package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ListQuestions handles GET /questions?page=N.
func (h *Handler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.questions.Page(ctx, page)
	if err != nil {
		h.fail(c, err)
		return
	}

	categories, err := h.categories.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"categories":       entities.CategoryMap(categories),
		"current_category": nil,
	})
}

// DeleteQuestion handles DELETE /questions/:id.
func (h *Handler) DeleteQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	if err := h.questions.Delete(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	total, err := h.questions.Count(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info("question deleted", zap.Int("question_id", id))

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"deleted":         id,
		"total_questions": total,
	})
}

// PostQuestions handles POST /questions: search when the body carries
// searchTerm, create otherwise.
func (h *Handler) PostQuestions(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid questions body", zap.Error(err))
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	if req.SearchTerm != nil {
		h.search(c, *req.SearchTerm)
		return
	}

	h.create(c, req.create())
}

// SearchQuestions handles POST /questions/search. A blank term is 404.
func (h *Handler) SearchQuestions(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.SearchTerm) == "" {
		notFound(c)
		return
	}

	h.search(c, req.SearchTerm)
}

func (h *Handler) search(c *gin.Context, term string) {
	questions, err := h.questions.Search(c.Request.Context(), term)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        nonNil(questions),
		"total_questions":  len(questions),
		"current_category": nil,
	})
}

func (h *Handler) create(c *gin.Context, req createQuestionRequest) {
	ctx := c.Request.Context()

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				h.logger.Debug("invalid question field",
					zap.String("field", fe.Field()),
					zap.String("rule", fe.Tag()),
				)
			}
		}
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	id, err := h.questions.Create(ctx, req.toEntity())
	if err != nil {
		h.fail(c, err)
		return
	}

	total, err := h.questions.Count(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info("question created", zap.Int("question_id", id), zap.Int("category_id", req.Category))

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created":         id,
		"total_questions": total,
	})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

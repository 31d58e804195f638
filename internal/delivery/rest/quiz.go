package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlayQuiz handles POST /play: returns a random question not asked yet,
// or null once the round is exhausted.
func (h *Handler) PlayQuiz(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid play body", zap.Error(err))
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	question, err := h.quiz.PickNext(c.Request.Context(), req.toRound())
	if err != nil {
		h.observePick("error")
		h.fail(c, err)
		return
	}

	if question == nil {
		h.observePick("exhausted")
	} else {
		h.observePick("question")
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}

func (h *Handler) observePick(outcome string) {
	if h.picks != nil {
		h.picks.ObservePick(outcome)
	}
}

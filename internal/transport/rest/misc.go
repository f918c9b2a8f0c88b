package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexgenhealth/internal/domain"
)

type faqGroup struct {
	Label string       `json:"label"`
	Items []domain.FAQ `json:"items"`
}

// @Summary Часто задаваемые вопросы
// @Description Возвращает справочные вопросы и ответы, сгруппированные по категориям
// @Tags Справка
// @Produce json
// @Success 200 {array} faqGroup "Группы вопросов"
// @Router /faqs [get]
func (h *Handler) getFAQs(c *gin.Context) {
	var groups []faqGroup
	index := make(map[string]int)

	for _, faq := range domain.FAQs {
		i, ok := index[faq.Label]
		if !ok {
			i = len(groups)
			index[faq.Label] = i
			groups = append(groups, faqGroup{Label: faq.Label})
		}
		groups[i].Items = append(groups[i].Items, faq)
	}

	successResponse(c, http.StatusOK, groups)
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    h.config.Name,
		"version": h.config.Version,
	})
}

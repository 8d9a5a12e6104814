package controller

import (
	"net/http"

	"github.com/Scalingo/sclng-top-languages/config"
	"github.com/Scalingo/sclng-top-languages/model"
	"github.com/Scalingo/sclng-top-languages/service"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIController interface {
	GetTopLanguages(ctx *gin.Context)
	GetRawTopLanguages(ctx *gin.Context)
	CompareTopLanguages(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type apiController struct {
	languageService service.LanguageService
	config          config.Config
}

func NewAPIController(config config.Config, service service.LanguageService) APIController {
	return apiController{
		languageService: service,
		config:          config,
	}
}

func (s apiController) GetTopLanguages(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}

	top, err := s.languageService.GetRankedTopLanguages(c.Request.Context(), query.Username, query.ToAggregateOptions(), query.ToRankOptions())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, top)
}

// GetRawTopLanguages return the aggregated mapping without ranking
func (s apiController) GetRawTopLanguages(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}

	totals, err := s.languageService.FetchTopLanguages(c.Request.Context(), query.Username, query.ToAggregateOptions())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (s apiController) CompareTopLanguages(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}

	usernames := query.UsernameList()
	if maxUsers := s.config.Tasks.MaxCompareUsers; maxUsers > 0 && len(usernames) > maxUsers {
		log.WithField("numberOfUsers", len(usernames)).Debug("too many users requested for comparison")
		respondError(c, model.ErrInvalidQuery)
		return
	}

	entries, err := s.languageService.CompareTopLanguages(c.Request.Context(), usernames, query.ToAggregateOptions(), query.ToRankOptions())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s apiController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindQuery(c *gin.Context) (model.TopLanguagesQuery, bool) {
	var query model.TopLanguagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Debug("unable to bind query parameters")
		respondError(c, model.ErrInvalidQuery)
		return query, false
	}

	return query, true
}

func respondError(c *gin.Context, err error) {
	c.JSON(model.HTTPStatus(err), model.NewAPIError(err))
}

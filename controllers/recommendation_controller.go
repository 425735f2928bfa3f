package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BiniyamTG/Injera-Beyond/services"
)

type RecommendationController struct {
	svc *services.RecommendationService
}

func NewRecommendationController(svc *services.RecommendationService) *RecommendationController {
	return &RecommendationController{svc: svc}
}

func (rc *RecommendationController) Random(c *gin.Context) {
	item, err := rc.svc.RandomAny(c.Request.Context(), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (rc *RecommendationController) ByRegion(c *gin.Context) {
	items, err := rc.svc.ByRegion(c.Request.Context(), c.Param("region"), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (rc *RecommendationController) Daily(c *gin.Context) {
	item, err := rc.svc.Daily(c.Request.Context(), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (rc *RecommendationController) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon must be a number"})
		return
	}

	items, err := rc.svc.Nearby(c.Request.Context(), lat, lon, lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BiniyamTG/Injera-Beyond/middlewares"
	"github.com/BiniyamTG/Injera-Beyond/services"
)

type FavoritesController struct {
	svc *services.FavoritesService
}

func NewFavoritesController(svc *services.FavoritesService) *FavoritesController {
	return &FavoritesController{svc: svc}
}

func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if err := fc.svc.AddFavorite(c.Request.Context(), user.ID, c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

func (fc *FavoritesController) AddTried(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if err := fc.svc.AddTried(c.Request.Context(), user.ID, c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as tried"})
}

func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	items, err := fc.svc.ListFavorites(c.Request.Context(), user.ID, lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (fc *FavoritesController) ListTried(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	items, err := fc.svc.ListTried(c.Request.Context(), user.ID, lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

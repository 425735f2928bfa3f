package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BiniyamTG/Injera-Beyond/middlewares"
	"github.com/BiniyamTG/Injera-Beyond/models"
	"github.com/BiniyamTG/Injera-Beyond/services"
	"github.com/BiniyamTG/Injera-Beyond/utils"
)

type DrinkController struct {
	svc      *services.DrinkService
	uploader *utils.S3Uploader
}

func NewDrinkController(svc *services.DrinkService, uploader *utils.S3Uploader) *DrinkController {
	return &DrinkController{svc: svc, uploader: uploader}
}

func (dc *DrinkController) Create(c *gin.Context) {
	var drink models.Drink
	if err := c.ShouldBindJSON(&drink); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := dc.svc.Create(c.Request.Context(), &drink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (dc *DrinkController) List(c *gin.Context) {
	drinks, err := dc.svc.List(c.Request.Context(), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drinks)
}

func (dc *DrinkController) Get(c *gin.Context) {
	drink, err := dc.svc.Get(c.Request.Context(), c.Param("id"), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drink)
}

func (dc *DrinkController) Update(c *gin.Context) {
	var drink models.Drink
	if err := c.ShouldBindJSON(&drink); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := dc.svc.Update(c.Request.Context(), c.Param("id"), &drink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (dc *DrinkController) Delete(c *gin.Context) {
	if err := dc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drink deleted"})
}

func (dc *DrinkController) Random(c *gin.Context) {
	drink, err := dc.svc.Random(c.Request.Context(), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drink)
}

func (dc *DrinkController) Rate(c *gin.Context) {
	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middlewares.CurrentUser(c)
	if err := dc.svc.Rate(c.Request.Context(), c.Param("id"), user.ID.Hex(), input.Score); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating added"})
}

func (dc *DrinkController) Share(c *gin.Context) {
	text, err := dc.svc.Share(c.Request.Context(), c.Param("id"), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"share_text": text})
}

func (dc *DrinkController) Popular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	drinks, err := dc.svc.Popular(c.Request.Context(), limit, lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drinks)
}

func (dc *DrinkController) UploadPhoto(c *gin.Context) {
	uploadPhoto(c, dc.uploader, "drinks", dc.svc.AddPhoto)
}

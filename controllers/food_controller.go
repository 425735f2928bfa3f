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

type FoodController struct {
	svc      *services.FoodService
	uploader *utils.S3Uploader
}

func NewFoodController(svc *services.FoodService, uploader *utils.S3Uploader) *FoodController {
	return &FoodController{svc: svc, uploader: uploader}
}

func (fc *FoodController) Create(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := fc.svc.Create(c.Request.Context(), &food)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (fc *FoodController) List(c *gin.Context) {
	var vegetarian *bool
	if raw := c.Query("vegetarian"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "vegetarian must be a boolean"})
			return
		}
		vegetarian = &v
	}

	foods, err := fc.svc.List(c.Request.Context(), vegetarian, c.Query("spicy_level"), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Get(c *gin.Context) {
	food, err := fc.svc.Get(c.Request.Context(), c.Param("id"), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Update(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := fc.svc.Update(c.Request.Context(), c.Param("id"), &food)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (fc *FoodController) Delete(c *gin.Context) {
	if err := fc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted"})
}

func (fc *FoodController) Random(c *gin.Context) {
	food, err := fc.svc.Random(c.Request.Context(), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Quiz(c *gin.Context) {
	quiz, err := fc.svc.Quiz(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (fc *FoodController) Rate(c *gin.Context) {
	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middlewares.CurrentUser(c)
	if err := fc.svc.Rate(c.Request.Context(), c.Param("id"), user.ID.Hex(), input.Score); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating added"})
}

func (fc *FoodController) Share(c *gin.Context) {
	text, err := fc.svc.Share(c.Request.Context(), c.Param("id"), lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"share_text": text})
}

func (fc *FoodController) Popular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	foods, err := fc.svc.Popular(c.Request.Context(), limit, lang(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) UploadPhoto(c *gin.Context) {
	uploadPhoto(c, fc.uploader, "foods", fc.svc.AddPhoto)
}

// lang reads the display language, defaulting to English.
func lang(c *gin.Context) string {
	return c.DefaultQuery("lang", "en")
}

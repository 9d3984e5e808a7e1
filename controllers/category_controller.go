package controllers

import (
	"dinkys-shop/models"
	"dinkys-shop/repositories"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryRepo *repositories.CategoryRepository
}

func NewCategoryController() *CategoryController {
	return &CategoryController{categoryRepo: repositories.NewCategoryRepository()}
}

// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch categories"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Create category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payload", "error": err.Error()})
		return
	}

	category, err := ctrl.categoryRepo.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category: " + err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": category})
}

package handler

import (
	"edushare/dto"
	"edushare/model"
	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

func ListCategoriesHandler(c *gin.Context, categoryService *usecase.CategoryService) {
	categories, err := categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, dto.ToCategoryResponse(category))
	}
	utils.Success(c, responses)
}

func GetCategoryHandler(c *gin.Context, categoryService *usecase.CategoryService) {
	category, err := categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToCategoryResponse(category))
}

func CreateCategoryHandler(c *gin.Context, categoryService *usecase.CategoryService) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := categoryService.CreateCategory(c.Request.Context(), c.GetString("user_id"), category); err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, dto.ToCategoryResponse(category))
}

func UpdateCategoryHandler(c *gin.Context, categoryService *usecase.CategoryService) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	categoryID := c.Param("id")
	updates := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := categoryService.UpdateCategory(c.Request.Context(),
		c.GetString("user_id"), categoryID, updates); err != nil {
		respondError(c, err)
		return
	}

	category, err := categoryService.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToCategoryResponse(category))
}

func DeleteCategoryHandler(c *gin.Context, categoryService *usecase.CategoryService) {
	if err := categoryService.DeleteCategory(c.Request.Context(),
		c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "category deleted"})
}

package handler

import (
	"strconv"

	"edushare/dto"
	"edushare/model"
	"edushare/repository"
	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))

	opts := repository.ListOptions{
		CategoryID: c.Query("category"),
		SortBy:     c.Query("sort"),
		Page:       page,
		PageSize:   pageSize,
	}

	notes, totalCount, err := notesService.ListPublicNotes(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, toNotesPage(notes, totalCount, page, pageSize))
}

func SearchNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))

	notes, totalCount, err := notesService.SearchPublicNotes(c.Request.Context(),
		c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, toNotesPage(notes, totalCount, page, pageSize))
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	actingUserID := c.GetString("user_id") // empty for anonymous readers

	note, userRating, err := notesService.GetNote(c.Request.Context(), noteID, actingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToNoteResponse(note)
	if userRating != nil {
		resp.UserRating = userRating.Value
	}
	utils.Success(c, resp)
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	note := &model.Note{
		UploaderID:  c.GetString("user_id"),
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		IsPublic:    isPublic,
	}

	if err := notesService.CreateNote(c.Request.Context(), note); err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	actingUserID := c.GetString("user_id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	updates := &model.Note{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		IsPublic:    isPublic,
	}

	if err := notesService.UpdateNote(c.Request.Context(), noteID, actingUserID, updates); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note updated successfully"})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	actingUserID := c.GetString("user_id")

	if err := notesService.DeleteNote(c.Request.Context(), noteID, actingUserID); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}

func MyNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	notes, err := notesService.MyNotes(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, dto.ToNoteResponse(note))
	}
	utils.Success(c, responses)
}

func toNotesPage(notes []*model.Note, totalCount, page, pageSize int) dto.NotesPageResponse {
	responses := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, dto.ToNoteResponse(note))
	}

	pageCount := 0
	if pageSize > 0 {
		pageCount = (totalCount + pageSize - 1) / pageSize
	}
	return dto.NotesPageResponse{
		Notes:       responses,
		TotalCount:  totalCount,
		PageCount:   pageCount,
		CurrentPage: page,
	}
}

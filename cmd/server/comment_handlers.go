package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"novelhub/internal/auth"
	"novelhub/internal/comment"
	"novelhub/internal/novel"
)

func handleListComments(c *gin.Context, db *sql.DB) {
	id, ok := novelIDParam(c)
	if !ok {
		return
	}
	comments, err := comment.ListByNovel(db, id)
	if err != nil {
		log.Printf("list comments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

func handlePostComment(c *gin.Context, db *sql.DB) {
	var req struct {
		NovelID int64  `json:"novel_id"`
		Text    string `json:"com_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NovelID == 0 || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "novel_id/com_text required"})
		return
	}

	if _, err := novel.GetByID(db, req.NovelID); errors.Is(err, novel.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "novel not found"})
		return
	} else if err != nil {
		log.Printf("post comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	cm, err := comment.Create(db, req.NovelID, c.GetInt64(auth.CtxUserIDKey), req.Text)
	if err != nil {
		log.Printf("post comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	cm.Author = c.GetString(auth.CtxUsernameKey)
	c.JSON(http.StatusCreated, gin.H{"message": "comment added", "comment": cm})
}

package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"novelhub/internal/auth"
	"novelhub/internal/favorite"
	"novelhub/internal/novel"
)

func handleIsFavorite(c *gin.Context, db *sql.DB) {
	id, ok := novelIDParam(c)
	if !ok {
		return
	}
	found, err := favorite.Exists(db, c.GetInt64(auth.CtxUserIDKey), id)
	if err != nil {
		log.Printf("is favorite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": found})
}

func handleAddFavorite(c *gin.Context, db *sql.DB) {
	var req struct {
		NovelID int64 `json:"novel_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NovelID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "novel_id required"})
		return
	}

	if _, err := novel.GetByID(db, req.NovelID); errors.Is(err, novel.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "novel not found"})
		return
	} else if err != nil {
		log.Printf("add favorite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	if err := favorite.Add(db, c.GetInt64(auth.CtxUserIDKey), req.NovelID); err != nil {
		log.Printf("add favorite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "favorite added"})
}

func handleRemoveFavorite(c *gin.Context, db *sql.DB) {
	id, ok := novelIDParam(c)
	if !ok {
		return
	}
	err := favorite.Remove(db, c.GetInt64(auth.CtxUserIDKey), id)
	if errors.Is(err, favorite.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}
	if err != nil {
		log.Printf("remove favorite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

func handleListFavorites(c *gin.Context, db *sql.DB) {
	novels, err := favorite.ListByUser(db, c.GetInt64(auth.CtxUserIDKey))
	if err != nil {
		log.Printf("list favorites: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, novels)
}

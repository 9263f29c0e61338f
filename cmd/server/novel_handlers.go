package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novelhub/internal/auth"
	"novelhub/internal/novel"
	"novelhub/internal/storage"
)

func novelIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("novel_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid novel_id"})
		return 0, false
	}
	return id, true
}

func handleListNovels(c *gin.Context, db *sql.DB) {
	novels, err := novel.ListAll(db)
	if err != nil {
		log.Printf("list novels: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, novels)
}

func handleNovelDetail(c *gin.Context, db *sql.DB) {
	id, ok := novelIDParam(c)
	if !ok {
		return
	}
	n, err := novel.GetByID(db, id)
	if errors.Is(err, novel.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "novel not found"})
		return
	}
	if err != nil {
		log.Printf("novel detail: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, n)
}

func handleListNovelTypes(c *gin.Context, db *sql.DB) {
	types, err := novel.ListTypes(db)
	if err != nil {
		log.Printf("list novel types: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, types)
}

func handleMyNovels(c *gin.Context, db *sql.DB) {
	novels, err := novel.ListByOwner(db, c.GetInt64(auth.CtxUserIDKey))
	if err != nil {
		log.Printf("my novels: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, novels)
}

func handleSubmitNovel(c *gin.Context, db *sql.DB, images *storage.ImageStore) {
	name := c.PostForm("novel_name")
	penname := c.PostForm("novel_penname")
	typeID, err := strconv.ParseInt(c.PostForm("novel_type_id"), 10, 64)
	if name == "" || penname == "" || err != nil || typeID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "novel_name/novel_type_id/novel_penname required"})
		return
	}

	file, err := c.FormFile("novel_img")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	src, err := file.Open()
	if err != nil {
		log.Printf("submit novel: open upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	defer src.Close()

	stored, err := images.Save(src, file.Filename)
	if err != nil {
		log.Printf("submit novel: store image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	n, err := novel.Create(db, name, typeID, stored, penname, c.GetInt64(auth.CtxUserIDKey))
	if err != nil {
		// don't leave the blob behind when the row never landed
		if rmErr := images.Remove(stored); rmErr != nil {
			log.Printf("submit novel: remove orphan image %s: %v", stored, rmErr)
		}
		log.Printf("submit novel: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "novel added", "novel_img": stored, "novel": n})
}

func handleAddChapter(c *gin.Context, db *sql.DB) {
	var req struct {
		NovelID int64  `json:"novel_id"`
		Num     int    `json:"novel_num"`
		Body    string `json:"chap_write"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.NovelID == 0 || req.Num == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "novel_id/novel_num required"})
		return
	}

	if _, err := novel.GetByID(db, req.NovelID); errors.Is(err, novel.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "novel not found"})
		return
	} else if err != nil {
		log.Printf("add chapter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	ch, err := novel.CreateChapter(db, req.NovelID, req.Num, req.Body)
	if err != nil {
		log.Printf("add chapter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chapter added", "chapter": ch})
}

func handleListChapters(c *gin.Context, db *sql.DB) {
	id, ok := novelIDParam(c)
	if !ok {
		return
	}
	chapters, err := novel.ListChapters(db, id)
	if err != nil {
		log.Printf("list chapters: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, chapters)
}

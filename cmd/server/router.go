package main

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"novelhub/internal/auth"
	"novelhub/internal/config"
	"novelhub/internal/storage"
)

func newRouter(cfg *config.Config, db *sql.DB, images *storage.ImageStore) *gin.Engine {
	r := gin.Default()
	secret := []byte(cfg.JWT.Secret)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// uploaded cover images
	r.Static("/uploads", images.Dir())

	// AUTH
	r.POST("/register", func(c *gin.Context) { handleRegister(c, db) })
	r.POST("/login", func(c *gin.Context) { handleLogin(c, db, secret, cfg.JWT.Expire) })

	// PUBLIC CATALOG
	r.GET("/novels", func(c *gin.Context) { handleListNovels(c, db) })
	r.GET("/novels/:novel_id", func(c *gin.Context) { handleNovelDetail(c, db) })
	r.GET("/novels/:novel_id/chapters", func(c *gin.Context) { handleListChapters(c, db) })
	r.GET("/noveltypes", func(c *gin.Context) { handleListNovelTypes(c, db) })
	r.POST("/addnovel", func(c *gin.Context) { handleAddChapter(c, db) })
	r.GET("/comment/:novel_id", func(c *gin.Context) { handleListComments(c, db) })

	// PROTECTED
	authed := r.Group("/")
	authed.Use(auth.RequireToken(secret))
	authed.GET("/user", func(c *gin.Context) { handleGetUser(c, db) })
	authed.POST("/change-password", func(c *gin.Context) { handleChangePassword(c, db) })
	authed.POST("/delete-account", func(c *gin.Context) { handleDeleteAccount(c, db) })
	authed.GET("/novel", func(c *gin.Context) { handleMyNovels(c, db) })
	authed.POST("/novel", func(c *gin.Context) { handleSubmitNovel(c, db, images) })
	authed.GET("/favorites", func(c *gin.Context) { handleListFavorites(c, db) })
	authed.GET("/favorites/:novel_id", func(c *gin.Context) { handleIsFavorite(c, db) })
	authed.POST("/favorites", func(c *gin.Context) { handleAddFavorite(c, db) })
	authed.DELETE("/favorites/:novel_id", func(c *gin.Context) { handleRemoveFavorite(c, db) })
	authed.POST("/comment", func(c *gin.Context) { handlePostComment(c, db) })

	return r
}

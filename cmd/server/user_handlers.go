package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"novelhub/internal/auth"
	"novelhub/internal/user"
)

func handleRegister(c *gin.Context, db *sql.DB) {
	var req struct {
		Name     string `json:"user_name"`
		Password string `json:"user_pass"`
		Email    string `json:"user_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Password == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_name/user_pass/user_email required"})
		return
	}

	u, err := user.Create(db, req.Name, req.Password, req.Email)
	if errors.Is(err, user.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user name or email already taken"})
		return
	}
	if err != nil {
		log.Printf("register: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "register failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registered", "user": u})
}

func handleLogin(c *gin.Context, db *sql.DB, secret []byte, ttl time.Duration) {
	var req struct {
		Name     string `json:"user_name"`
		Password string `json:"user_pass"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_name/user_pass required"})
		return
	}

	u, err := user.VerifyLogin(db, req.Name, req.Password)
	if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrBadPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, err := auth.SignToken(secret, u.ID, u.Name, ttl)
	if err != nil {
		log.Printf("login: sign token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	// public fields only, the password hash never leaves the server
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func handleGetUser(c *gin.Context, db *sql.DB) {
	u, err := user.GetByID(db, c.GetInt64(auth.CtxUserIDKey))
	if errors.Is(err, user.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		log.Printf("get user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_name": u.Name, "user_email": u.Email})
}

func handleChangePassword(c *gin.Context, db *sql.DB) {
	var req struct {
		Password string `json:"user_pass"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_pass required"})
		return
	}

	err := user.UpdatePassword(db, c.GetInt64(auth.CtxUserIDKey), req.Password)
	if errors.Is(err, user.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		log.Printf("change password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func handleDeleteAccount(c *gin.Context, db *sql.DB) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}

	err := user.Delete(db, c.GetInt64(auth.CtxUserIDKey))
	if errors.Is(err, user.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		log.Printf("delete account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-restaurant-pos/models"
	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settings *services.SettingsStore
	gate     *services.ManagerGate
}

func NewSettingsController(settings *services.SettingsStore, gate *services.ManagerGate) *SettingsController {
	return &SettingsController{settings: settings, gate: gate}
}

func (ctl *SettingsController) GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		settings, err := ctl.settings.All(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// The manager secret never leaves the server.
		filtered := make([]models.Setting, 0, len(settings))
		for _, setting := range settings {
			if setting.Key == models.SettingManagerPassword {
				continue
			}
			filtered = append(filtered, setting)
		}
		c.JSON(http.StatusOK, filtered)
	}
}

func (ctl *SettingsController) UpdateSetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Key   string `json:"key" validate:"required"`
			Value string `json:"value"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.UpdatableSetting(body.Key) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "setting key is not updatable here"})
			return
		}

		if err := ctl.settings.Set(ctx, body.Key, body.Value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "setting update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": body.Key, "value": body.Value})
	}
}

func (ctl *SettingsController) ChangeManagerPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Current_password string `json:"current_password" validate:"required"`
			New_password     string `json:"new_password" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.New_password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new password must not be empty"})
			return
		}

		if err := ctl.gate.ChangePassword(ctx, body.Current_password, body.New_password); err != nil {
			if errors.Is(err, services.ErrBadCredential) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "manager password is incorrect"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "manager password updated"})
	}
}

package handler

import (
	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type generatePromptProxyRequest struct {
	Content string `json:"content"`
}

type generatePromptRequest struct {
	Mode   models.StartMode           `json:"mode" binding:"required"`
	Params *models.GuidedPromptParams `json:"params"`
}

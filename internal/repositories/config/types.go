package config

import "github.com/dmateos/amigo/internal/models"

type SaveConfigInput struct {
	Config *models.Config
}

type GetConfigInput struct {
	ConfigID string
}

package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera IDs curtos para os backups
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

func NewUUID() string {
	return uuid.NewString()
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID genera el identificador opaco usado para los documentos nuevos.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera o identificador curto usado em registros de dia e contas
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

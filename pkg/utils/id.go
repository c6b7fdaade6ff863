package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

// Prefixos usados nos IDs públicos
const (
	PrefixClient    = "cli"
	PrefixProject   = "proj"
	PrefixInvoice   = "inv"
	PrefixTimeEntry = "te"
)

// GenerateID gera um ID no formato <prefixo>_<nanoid>, ex.: cli_x1y2z3a4b5c6
func GenerateID(prefix string) (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", err
	}

	if prefix == "" {
		return id, nil
	}

	return prefix + "_" + id, nil
}

// GenerateToken gera um token opaco para links de verificação e redefinição de senha
func GenerateToken() (string, error) {
	return gonanoid.Generate(idAlphabet+"ABCDEFGHIJKLMNOPQRSTUVWXYZ", 48)
}

package services

import "strings"

// Signature capture is delegated to an external collaborator that returns
// an opaque image-encoded string. An empty or blank capture counts as no
// signature.

var emptySignaturePayloads = map[string]bool{
	"data:image/png;base64,": true,
	"data:,":                 true,
}

func IsBlankSignature(signature string) bool {
	trimmed := strings.TrimSpace(signature)
	return trimmed == "" || emptySignaturePayloads[trimmed]
}

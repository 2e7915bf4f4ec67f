// Package constants holds identifiers shared across layers.
package constants

// Recognition providers selectable through recognition.provider.
const (
	RecognitionProviderRekognition = "rekognition"
	RecognitionProviderMemory      = "memory"
)

// TokenTypeBearer is reported alongside issued session tokens.
const TokenTypeBearer = "bearer"

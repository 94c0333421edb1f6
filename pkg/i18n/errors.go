package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidStructure     = errors.New("invalid translation structure")

	ErrLoadingTranslationsCancelled  = errors.New("loading translations canceled before starting")
	ErrFailedToReadEmbeddedDirectory = errors.New("failed to read embedded directory")
	ErrFailedToReadEmbeddedFile      = errors.New("failed to read embedded translation file")
	ErrFailedToParseEmbeddedFile     = errors.New("failed to parse embedded translation file")
)

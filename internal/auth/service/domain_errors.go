package service

import (
	"net/http"

	commonerrors "github.com/avasilyev/blogd/internal/common/errors"
)

var (
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"invalid username/password",
	)

	ErrValidationUsernameLength = commonerrors.NewDomainError(
		"VALIDATION_USERNAME_LENGTH",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"username must be between 3 and 32 characters",
	)

	ErrValidationUsernameChars = commonerrors.NewDomainError(
		"VALIDATION_USERNAME_CHARS",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"username may contain latin letters, digits, hyphens and underscores",
	)

	ErrValidationPasswordLength = commonerrors.NewDomainError(
		"VALIDATION_PASSWORD_LENGTH",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"password must be between 8 and 72 characters",
	)

	ErrValidationPasswordLatinDigit = commonerrors.NewDomainError(
		"VALIDATION_PASSWORD_LATIN_DIGIT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"password must contain at least one letter and one digit",
	)
)

package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// 1. Ganti underscore dengan spasi (employee_id -> employee id)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Ubah jadi Title Case (employee id -> Employee Id)
	caser := cases.Title(language.English)
	return caser.String(s)
}

func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		// Ambil error pertama
		e := errs[0]

		// e.Field() sudah otomatis nama json karena RegisterTagNameFunc di Init()
		fieldName := e.Field()
		humanReadableField := formatFieldName(fieldName)

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusBadRequest,
	)
}

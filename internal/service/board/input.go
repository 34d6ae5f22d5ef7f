package board

import (
	"github.com/mindpath/mindpath-backend/internal/domain"
)

// SaveInput holds parameters for the generic card save operation. UserName
// and UserEmail are the identity claimed by the request body; they are
// checked against the credential identity before anything else happens.
type SaveInput struct {
	Table     string
	UserName  string
	UserEmail string
	Theme     string
	CardID    string
	Tasks     []domain.TaskItem
}

// Validate validates the save input. Table membership is part of validation:
// a name outside the allowlist must fail before any query is built.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if !domain.AllowedBoardTable(i.Table) {
		errs = append(errs, domain.FieldError{Field: "table", Message: "unknown table"})
	}
	if i.UserName == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.UserEmail == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Theme == "" {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "required"})
	}
	if i.CardID == "" {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing one theme's cards. Reads carry no
// body identity; the cards returned are always the caller's own.
type ListInput struct {
	Table string
	Theme string
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !domain.AllowedBoardTable(i.Table) {
		errs = append(errs, domain.FieldError{Field: "table", Message: "unknown table"})
	}
	if i.Theme == "" {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

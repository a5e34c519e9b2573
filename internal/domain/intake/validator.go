package intake

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"nelly_tech/internal/domain/entities"
)

// Field identifies the submission field that failed validation.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldServiceType Field = "service_type"
	FieldDescription Field = "description"
)

const (
	minNameLength        = 3
	minDescriptionLength = 10
	minPhoneDigits       = 10
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidationError is a user-correctable problem with one field.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Submission is the raw quote request as typed in the site form.
type Submission struct {
	Name            string
	Email           string
	Phone           string
	Company         string
	ServiceType     string
	Description     string
	DesiredDeadline string
	BudgetRange     string
}

// IsValidEmail applies the loose local@domain.tld check used by the site.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone reports whether raw carries 10 or 11 digits.
func IsValidPhone(raw string) bool {
	n := len(PhoneDigits(raw))
	return n >= minPhoneDigits && n <= maxPhoneDigits
}

// Validate checks s field by field and stops at the first failure, in the
// order name, email, phone, service type, description. On success it returns
// the normalized quote request with status Novo and read=false; ID and
// SubmittedAt are left for the store.
func Validate(s Submission) (entities.QuoteRequest, error) {
	name := strings.TrimSpace(s.Name)
	email := strings.TrimSpace(s.Email)
	description := strings.TrimSpace(s.Description)

	if utf8.RuneCountInString(name) < minNameLength {
		return entities.QuoteRequest{}, &ValidationError{
			Field:   FieldName,
			Message: "Por favor, insira um nome válido (mínimo 3 caracteres).",
		}
	}
	if !IsValidEmail(email) {
		return entities.QuoteRequest{}, &ValidationError{
			Field:   FieldEmail,
			Message: "Por favor, insira um e-mail válido.",
		}
	}
	if !IsValidPhone(s.Phone) {
		return entities.QuoteRequest{}, &ValidationError{
			Field:   FieldPhone,
			Message: "Por favor, insira um telefone válido com DDD.",
		}
	}
	if strings.TrimSpace(s.ServiceType) == "" {
		return entities.QuoteRequest{}, &ValidationError{
			Field:   FieldServiceType,
			Message: "Por favor, selecione um tipo de serviço.",
		}
	}
	if utf8.RuneCountInString(description) < minDescriptionLength {
		return entities.QuoteRequest{}, &ValidationError{
			Field:   FieldDescription,
			Message: "Por favor, descreva seu projeto com mais detalhes (mínimo 10 caracteres).",
		}
	}

	return entities.QuoteRequest{
		Name:            name,
		Email:           email,
		Phone:           FormatPhone(s.Phone),
		Company:         orDefault(s.Company, entities.DefaultCompany),
		ServiceType:     strings.TrimSpace(s.ServiceType),
		Description:     description,
		DesiredDeadline: orDefault(s.DesiredDeadline, entities.DefaultNotSpecified),
		BudgetRange:     orDefault(s.BudgetRange, entities.DefaultNotSpecified),
		Status:          entities.QuoteStatusNovo,
		Read:            false,
	}, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

package validation

import (
	"net/url"
	"reflect"
	"strings"

	"expense-bot/internal/parser"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the bot's custom rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a validator whose category_id rule accepts the
// identifiers of taxonomy.
func NewValidator(taxonomy *parser.Taxonomy) *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_id", categoryIDRule(taxonomy))
	_ = v.RegisterValidation("webhook_url", validateWebhookURL)
	_ = v.RegisterValidation("telegram_user_id", validateTelegramUserID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

func categoryIDRule(taxonomy *parser.Taxonomy) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := taxonomy.ByID(fl.Field().String())
		return ok
	}
}

// validateWebhookURL accepts absolute https URLs without fragments; Telegram
// refuses anything else
func validateWebhookURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != "" && u.Fragment == ""
}

// validateTelegramUserID accepts positive identifiers below 2^52, the range
// Telegram guarantees for user IDs
func validateTelegramUserID(fl validator.FieldLevel) bool {
	id := fl.Field().Int()
	return id > 0 && id < 1<<52
}

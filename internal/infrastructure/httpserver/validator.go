package httpserver

import (
	"github.com/go-playground/validator/v10"
	"github.com/offmylawn101/slopwatch/internal/core/domain/vote"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface and registers the identifier formats the vote API accepts.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	_ = v.RegisterValidation("tweetid", func(fl validator.FieldLevel) bool {
		return vote.ValidTweetID(fl.Field().String())
	})
	_ = v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
		return vote.ValidUserID(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

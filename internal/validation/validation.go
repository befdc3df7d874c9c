// Package validation checks submitted campground and review forms and turns
// them into typed inputs. Failures carry one message per field in the style
// `"campground.title" is required`, joined with ",".
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	apperrors "yelpcamp/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CampgroundForm is the raw campground[...] form submission. Fields stay
// strings so a malformed number is reported as a validation failure.
type CampgroundForm struct {
	Title       string `form:"campground[title]" validate:"required"`
	Price       string `form:"campground[price]" validate:"omitempty,numeric,nummin=0"`
	Image       string `form:"campground[image]" validate:"omitempty,url"`
	Description string `form:"campground[description]"`
	Location    string `form:"campground[location]"`
}

// ReviewForm is the raw review[...] form submission
type ReviewForm struct {
	Body   string `form:"review[body]" validate:"required"`
	Rating string `form:"review[rating]" validate:"required,numeric,nummin=1,nummax=5"`
}

// CampgroundInput is a validated campground submission
type CampgroundInput struct {
	Title       string
	Price       *float64
	Image       string
	Description string
	Location    string
}

// ReviewInput is a validated review submission
type ReviewInput struct {
	Body   string
	Rating float64
}

// Validator wraps a validator.Validate configured for form submissions
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the numeric bound rules registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("nummin", numberBound(func(n, bound float64) bool { return n >= bound }))
	_ = v.RegisterValidation("nummax", numberBound(func(n, bound float64) bool { return n <= bound }))
	return &Validator{validate: v}
}

// Campground validates form and converts it to a CampgroundInput
func (v *Validator) Campground(form CampgroundForm) (*CampgroundInput, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Price = strings.TrimSpace(form.Price)
	if err := v.check(form); err != nil {
		return nil, err
	}

	in := &CampgroundInput{
		Title:       form.Title,
		Image:       strings.TrimSpace(form.Image),
		Description: form.Description,
		Location:    strings.TrimSpace(form.Location),
	}
	if form.Price != "" {
		price, err := strconv.ParseFloat(form.Price, 64)
		if err != nil {
			return nil, apperrors.NewValidationError(`"campground.price" must be a number`)
		}
		in.Price = &price
	}
	return in, nil
}

// Review validates form and converts it to a ReviewInput
func (v *Validator) Review(form ReviewForm) (*ReviewInput, error) {
	form.Body = strings.TrimSpace(form.Body)
	form.Rating = strings.TrimSpace(form.Rating)
	if err := v.check(form); err != nil {
		return nil, err
	}

	rating, err := strconv.ParseFloat(form.Rating, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(`"review.rating" must be a number`)
	}
	return &ReviewInput{Body: form.Body, Rating: rating}, nil
}

func (v *Validator) check(form interface{}) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate form: %w", err)
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}
	return apperrors.NewValidationError(messages...)
}

func message(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", name)
	case "numeric":
		return fmt.Sprintf("%q must be a number", name)
	case "nummin":
		return fmt.Sprintf("%q must be greater than or equal to %s", name, fe.Param())
	case "nummax":
		return fmt.Sprintf("%q must be less than or equal to %s", name, fe.Param())
	case "url":
		return fmt.Sprintf("%q must be a valid uri", name)
	default:
		return fmt.Sprintf("%q is invalid", name)
	}
}

// fieldName reports "campground[title]" as "campground.title"
func fieldName(f reflect.StructField) string {
	name := f.Tag.Get("form")
	if name == "" || name == "-" {
		return f.Name
	}
	name = strings.ReplaceAll(name, "[", ".")
	return strings.ReplaceAll(name, "]", "")
}

// numberBound compares the field, parsed as a float, against the tag param
func numberBound(cmp func(n, bound float64) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw := strings.TrimSpace(fl.Field().String())
		if raw == "" {
			return true
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// reported by the numeric rule
			return true
		}
		bound, err := strconv.ParseFloat(fl.Param(), 64)
		if err != nil {
			return false
		}
		return cmp(n, bound)
	}
}

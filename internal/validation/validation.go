// Package validation binds request data and turns validation failures into
// field-level 400 responses.
//
// Struct tag rules are enforced with go-playground/validator; rules that
// need parsing (dates, numbers) are reported by the payload's own Validate
// method as CustomValidationErrors.
package validation

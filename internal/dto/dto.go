// Package dto holds the request payloads bound by handlers and the
// response bodies produced by the converter package.
//
// Request types implement validation.Validatable. Tags only check the
// shape of the input; domain rules such as nickname charset or record
// length live in the services so they surface as domain error codes.
package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// EmptyRequest is bound by endpoints that read nothing from the request
// body, path or query.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

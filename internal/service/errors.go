package service

import "errors"

var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrEmptyCart      = errors.New("cart is empty, nothing to check out")
	ErrStatusRequired = errors.New("status is required")
)

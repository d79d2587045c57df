package interfaces

import "errors"

// ErrAlreadyExists is returned by repositories when a conditional insert hits an
// existing primary key.
var ErrAlreadyExists = errors.New("item already exists")

// ErrSignatureVerification is returned by event verifiers when a delivery
// cannot be authenticated.
var ErrSignatureVerification = errors.New("signature verification failed")

// ErrMalformedPayload is returned by event verifiers when an authenticated
// delivery cannot be decoded.
var ErrMalformedPayload = errors.New("malformed event payload")

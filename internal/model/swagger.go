package model

import "github.com/visitstats/dashboard/internal/pkg/apierr"

// ErrorResponse documents the body of every error response.
type ErrorResponse = apierr.Error

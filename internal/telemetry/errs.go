//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import "errors"

// typedError is implemented by errors that name their own error.type.
type typedError interface {
	ErrorType() string
}

// ToErrorType returns the error.type attribute value for err, or errorType
// when no error in the chain names one.
func ToErrorType(err error, errorType string) string {
	var te typedError
	if errors.As(err, &te) {
		if t := te.ErrorType(); t != "" {
			return t
		}
	}
	return errorType
}

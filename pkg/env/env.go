// Copyright 2025 LogArchive Authors
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"sync"

	"github.com/spf13/viper"
)

const (
	Local      = "local"
	Production = "production"
)

var (
	Env string

	once sync.Once
)

func IsLocal() bool {
	return Env == Local
}

// InLambda reports whether the process runs inside the Lambda runtime.
func InLambda() bool {
	return viper.GetString("AWS_LAMBDA_RUNTIME_API") != ""
}

func init() {
	once.Do(func() {
		_ = viper.BindEnv("ENV")
		_ = viper.BindEnv("AWS_LAMBDA_RUNTIME_API")
		_ = viper.BindEnv("_HANDLER")

		Env = viper.GetString("ENV")
		if Env == "" {
			// Lambda never sets ENV; treat it as production so logs stay JSON.
			if InLambda() {
				Env = Production
			} else {
				Env = Local
			}
		}
	})
}

// LambdaHandler returns the handler name configured for the function, as
// exported by the Lambda runtime in _HANDLER.
func LambdaHandler() string {
	return viper.GetString("_HANDLER")
}

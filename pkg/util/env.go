// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"os"
	"strings"
)

// EnvString retrieves the string value of the environment variable named by the key.
// If the variable is not present, it returns default value.
func EnvString(key, def string) string {
	if env := os.Getenv(key); env != "" {
		return env
	}
	return def
}

// EnvStringSlice retrieves the comma-separated values of the environment
// variable named by the key. If the variable is not present, it returns
// default value.
func EnvStringSlice(key string, def []string) []string {
	if env := os.Getenv(key); env != "" {
		var res []string
		for _, v := range strings.Split(env, ",") {
			if v = strings.TrimSpace(v); v != "" {
				res = append(res, v)
			}
		}
		return res
	}
	return def
}

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

package asset

import (
	"github.com/pkg/errors"
)

// Secret is a secret made available to an action's code. Only the name and
// value are ever persisted.
type Secret struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Action is the typed view of an Actions record.
type Action struct {
	Name              string        `json:"name"`
	Code              string        `json:"code,omitempty"`
	Runtime           string        `json:"runtime,omitempty"`
	Status            string        `json:"status,omitempty"`
	Dependencies      []interface{} `json:"dependencies,omitempty"`
	Secrets           []Secret      `json:"secrets,omitempty"`
	SupportedTriggers []interface{} `json:"supported_triggers,omitempty"`
	Deployed          bool          `json:"deployed,omitempty"`
	// AllChangesDeployed is the legacy spelling of Deployed.
	AllChangesDeployed bool `json:"all_changes_deployed,omitempty"`
}

// ActionDescriptor is the persisted form of an Action.
type ActionDescriptor struct {
	Name              string        `json:"name"`
	Code              string        `json:"code"`
	Runtime           string        `json:"runtime,omitempty"`
	Status            string        `json:"status,omitempty"`
	Dependencies      []interface{} `json:"dependencies,omitempty"`
	Secrets           []Secret      `json:"secrets"`
	SupportedTriggers []interface{} `json:"supported_triggers,omitempty"`
	Deployed          bool          `json:"deployed"`
}

// ActionFromObject decodes an Actions record. Fields not part of Action,
// including secret fields other than name and value, are dropped.
func ActionFromObject(o Object) (Action, error) {
	var a Action
	if err := FromObject(o, &a); err != nil {
		return Action{}, errors.Wrapf(err, "decoding action %q", o.Name())
	}
	return a, nil
}

// Descriptor returns the persisted form of a with its code replaced by
// codePath.
//
// Deployed falls back to the legacy AllChangesDeployed flag whenever Deployed
// is false, including when it was explicitly set to false.
func (a Action) Descriptor(codePath string) ActionDescriptor {
	secrets := make([]Secret, len(a.Secrets))
	for i, s := range a.Secrets {
		secrets[i] = Secret{Name: s.Name, Value: s.Value}
	}
	return ActionDescriptor{
		Name:              a.Name,
		Code:              codePath,
		Runtime:           a.Runtime,
		Status:            a.Status,
		Dependencies:      a.Dependencies,
		Secrets:           secrets,
		SupportedTriggers: a.SupportedTriggers,
		Deployed:          a.Deployed || a.AllChangesDeployed,
	}
}

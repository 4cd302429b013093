// Copyright 2021 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package methylation

import (
	"github.com/pkg/errors"
)

// Error kinds returned by SelectInformativeSites. Returned errors wrap
// one of these with context; test for a kind with errors.Cause.
var (
	// ErrInvalidInput marks beta or AUC values outside [0, 1].
	ErrInvalidInput = errors.New("invalid input")
	// ErrDimensionMismatch marks matrix, score, and annotation row
	// counts that disagree.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidParameter marks malformed configuration.
	ErrInvalidParameter = errors.New("invalid parameter")
)

/*
Copyright 2024 The Spark authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package driverstep

import "fmt"

// ReservedKeyError indicates a caller-supplied annotation collides with a key
// only the driver configuration step may set.
type ReservedKeyError struct {
	Key string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("annotation key %s is reserved and cannot be set by the caller", e.Key)
}

// IdentityError indicates the resolved process identity cannot be used for
// the driver container.
type IdentityError struct {
	User   string
	Reason string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("identity resolution failed for user %s: %s", e.User, e.Reason)
}

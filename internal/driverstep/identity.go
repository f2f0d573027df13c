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

import (
	"fmt"
	"os/user"

	"github.com/arjunshroff/spark/pkg/config"
)

// Identity is the process identity the driver container runs as.
type Identity struct {
	User     string
	UID      string
	Groups   []string
	GroupIDs []string
}

// IdentityResolver supplies the identity of the user submitting the
// application. It is injected into the driver configuration step so that
// tests can supply deterministic fixtures without touching the execution
// environment.
type IdentityResolver interface {
	Resolve(conf *config.Properties) (Identity, error)
}

// OSIdentityResolver resolves the identity from the execution environment,
// honoring the container user and UID configuration overrides.
type OSIdentityResolver struct{}

var _ IdentityResolver = OSIdentityResolver{}

// Resolve implements IdentityResolver. When both overrides are configured no
// environment lookup happens and the override user's primary group is assumed
// to mirror the user.
func (OSIdentityResolver) Resolve(conf *config.Properties) (Identity, error) {
	name, hasName := config.ContainerUser.GetOptional(conf)
	uid, hasUID := config.ContainerUID.GetOptional(conf)
	if hasName && hasUID {
		return Identity{
			User:     name,
			UID:      uid,
			Groups:   []string{name},
			GroupIDs: []string{uid},
		}, nil
	}

	current, err := user.Current()
	if err != nil {
		return Identity{}, fmt.Errorf("failed to resolve current user: %w", err)
	}

	id := Identity{User: current.Username, UID: current.Uid}
	if hasName {
		id.User = name
	}
	if hasUID {
		id.UID = uid
	}

	gids, err := current.GroupIds()
	if err != nil {
		return Identity{}, fmt.Errorf("failed to resolve group IDs for user %s: %w", id.User, err)
	}
	id.GroupIDs = gids
	for _, gid := range gids {
		group, err := user.LookupGroupId(gid)
		if err != nil {
			// Unresolvable group names fall back to the numeric ID.
			id.Groups = append(id.Groups, gid)
			continue
		}
		id.Groups = append(id.Groups, group.Name)
	}
	return id, nil
}

// validateIdentity rejects identities the driver container cannot run as.
func validateIdentity(id Identity) error {
	if id.UID == "" {
		return &IdentityError{User: id.User, Reason: "resolved user ID is empty"}
	}
	if len(id.GroupIDs) == 0 {
		return &IdentityError{User: id.User, Reason: "resolved group ID set is empty"}
	}
	return nil
}

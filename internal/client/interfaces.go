// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/jander15/BathroomPass-sub000/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in or quits.
	LoginFlow(ctx context.Context) (models.Session, error)

	// Console blocks until the user leaves it. signOut reports that the
	// session has to end.
	Console(ctx context.Context) (signOut bool, err error)
}

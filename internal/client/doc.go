// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the console client runtime.
//
// It restores the saved session, runs the sign-in and action console screens,
// and returns to sign-in whenever the session ends.
package client

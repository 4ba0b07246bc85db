// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// [App] maps positional arguments to calls on an
// [adapter.ContactKeeperAdapter] and prints results as indented JSON. The
// session token returned by login is kept in a [TokenFile] so that subsequent
// invocations stay authenticated until logout. [Usage] lists the commands.
package client

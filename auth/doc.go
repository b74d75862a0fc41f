// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the operator key used to protect the /admin routes.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(auth.ScopeAdmin, salt)
	err := auth.ValidateAdminKey(auth.ScopeAdmin, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same scope and salt always produce the same key, so nothing has to be
stored. An empty salt disables admin access entirely (ErrAdminDisabled).

Print the key for a deployment with:

	dialectctl admin-key --salt "$ADMIN_KEY_SALT"

# IP Hashing

Snapshots record who triggered them without keeping raw addresses:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth

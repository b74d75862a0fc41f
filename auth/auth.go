// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
)

const (
	// ScopeAdmin is the scope the operator key for /admin routes is derived from.
	ScopeAdmin = "admin"
	// Header carries the operator key. "Authorization: Bearer <key>" works too.
	Header = "X-Admin-Key"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrAdminDisabled   = errors.New("admin key salt not configured")
)

// GenerateAdminKey derives the key for scope from salt. The same salt always
// gives the same key, so operators can print it with dialectctl admin-key.
func GenerateAdminKey(scope, salt string) string {
	sum := mac(salt, scope)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks adminKey against the key derived for scope.
func ValidateAdminKey(scope, adminKey, salt string) error {
	if salt == "" {
		return ErrAdminDisabled
	}
	if adminKey == "" {
		return ErrInvalidAdminKey
	}
	if !hmac.Equal([]byte(adminKey), []byte(GenerateAdminKey(scope, salt))) {
		return ErrInvalidAdminKey
	}
	return nil
}

// KeyFromRequest returns the operator key sent with r, or "".
func KeyFromRequest(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get(Header)); key != "" {
		return key
	}
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

// HashIP hides a client address in logs and snapshot metadata. The first
// 64 bits of the salted MAC are kept.
func HashIP(ip, salt string) string {
	return hex.EncodeToString(mac(salt, ip)[:8])
}

func mac(salt, msg string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(msg))
	return h.Sum(nil)
}

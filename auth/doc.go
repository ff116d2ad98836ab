// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin authentication and token issuance.

# Admin Login

There is a single admin identity taken from configuration:

	issuer := auth.NewIssuer(cfg.SecretKey, cfg.AdminUsername, cfg.AdminPassword, cfg.TokenTTL)
	token, err := issuer.Login(username, password)

Both fields are compared through HMAC-SHA256 digests with hmac.Equal, so the
comparison time does not reveal how much of the input matched. A mismatch
returns ErrInvalidCredentials.

# Admin Tokens

Tokens are HS256 JWTs with registered claims:

  - sub: admin username
  - iat: issue time
  - exp: issue time + TokenTTL
  - jti: random UUID

Verify checks the signature, algorithm, expiry, and subject:

	claims, err := issuer.Verify(token)

Errors are ErrTokenExpired for an expired token and ErrInvalidToken for
everything else.
*/
package auth

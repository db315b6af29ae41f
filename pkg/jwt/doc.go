// Package jwt provides JSON Web Token utilities for the ConectaVagas API.
//
// The jwt package handles token generation, validation, and claims
// extraction for company authentication. Tokens are signed with
// HMAC-SHA256 using a secret supplied through configuration.
//
// # Token Generation
//
// Issue a token for an authenticated company:
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:     "signing-secret",
//	    Issuer:     "conectavagas",
//	    Expiration: 7 * 24 * time.Hour,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    CompanyID: company.ID,
//	    Email:     company.Email,
//	    Name:      company.Name,
//	})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	companyID := claims.CompanyID
//
// There is no refresh mechanism: when a token expires the session ends
// and the company logs in again.
package jwt

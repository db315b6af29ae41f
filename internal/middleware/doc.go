// Package middleware provides HTTP middleware for the ConectaVagas API.
//
// The middleware package contains reusable components for request
// identification, logging, panic recovery, CORS, gzip compression and
// JWT authentication, composed with Chain:
//
//	handler := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//		middleware.CORS(origins),
//		middleware.Compress,
//	)
//
// Auth validates Bearer tokens on the protected routes only, so it is
// applied per-route rather than in the global chain.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetCompanyID(ctx): Returns the authenticated company ID
//   - GetClaims(ctx): Returns the verified JWT claims
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware

// Package handler provides HTTP request handlers for the ConectaVagas API.
//
// The handler package contains all HTTP endpoint implementations
// organized by feature area: authentication, job postings, the live
// update stream and the SPA fallback.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the services it needs
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to {"error": ...} or {"errors": [...]}
//     JSON bodies with the matching status code
//
// # Authentication
//
// Publishing and deleting jobs require a Bearer token. The auth
// middleware verifies it and handlers read the principal via
// middleware.GetClaims(r.Context()).
//
// # Example Usage
//
//	jobHandler := NewJobHandler(jobService, broadcaster)
//	mux.HandleFunc("GET /api/jobs", jobHandler.List)
//	mux.Handle("POST /api/jobs", authMW(http.HandlerFunc(jobHandler.Create)))
package handler

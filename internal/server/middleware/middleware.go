// Package middleware provides the Gin middleware stack: recovery,
// request-ID, CORS, request logging, metrics, and bearer-token auth.
package middleware

// ContextUserKey is the Gin context key the auth middleware stores the
// authenticated user under.
const ContextUserKey = "auth_user"

// ContextRequestIDKey is the Gin context key for the request id.
const ContextRequestIDKey = "request_id"

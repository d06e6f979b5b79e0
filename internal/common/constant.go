package common

// PermissionsClaimType is the claim type carrying permission grants on a
// bearer token. Auth0-compatible issuers emit it either as a single
// comma-joined value or as an array of single values.
const PermissionsClaimType = "permissions"

// RequestIDHeaderName is the response header carrying the per-request id.
const RequestIDHeaderName = "X-Request-Id"

package common

// AuthorizationHeader is the HTTP header carrying the bearer credential.
const AuthorizationHeader = "Authorization"

// BearerPrefix prefixes the credential in the Authorization header.
const BearerPrefix = "Bearer "

// UploadFieldName is the multipart form field the backend expects the
// uploaded file under.
const UploadFieldName = "file"

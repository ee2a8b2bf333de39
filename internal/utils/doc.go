// Package utils holds small helpers shared by the client and the stub
// directory: token redaction and validation, SCIM response writing, the
// preconfigured resty client and UUID generation.
package utils

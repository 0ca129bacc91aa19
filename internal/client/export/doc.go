// Package export stores report documents downloaded from the backend.
//
// Three sinks are available: a local directory, an S3 bucket (or any
// S3-compatible store such as MinIO) and a presigned upload URL. New picks
// one from configuration.
package export

package s3

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// ErrObjectNotFound is returned when the requested key does not exist in the
// bucket. Callers decide whether a missing key is an error (download) or
// already-gone (compensating delete).
var ErrObjectNotFound = errors.New("object not found")

// ErrIncompleteConfig is returned when the S3 configuration is missing
// required values.
var ErrIncompleteConfig = errors.New("incomplete S3 configuration")

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "404":
			return true
		}
	}
	return false
}

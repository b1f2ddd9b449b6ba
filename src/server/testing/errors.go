package testing

import "github.com/cockroachdb/errors"

var NetworkFailure = errors.New("test dummy network failure")

package userentity

import "github.com/cockroachdb/errors/domains"

var InvalidInputMark = domains.New("invalid_input")

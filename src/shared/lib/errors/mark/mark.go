package mark

import "github.com/cockroachdb/errors"

func Wrap(handledErr error, markingErr error, msg string) error {
	newErr := errors.Mark(handledErr, markingErr)
	return errors.Wrap(newErr, msg)
}

func Message(markingErr error, msg string) error {
	err := errors.New(msg)
	return errors.Mark(err, markingErr)
}

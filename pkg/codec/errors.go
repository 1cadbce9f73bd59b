package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMalformedHex  = errors.New("codec: malformed hex value")
	ErrMalformedJSON = errors.New("codec: malformed json")
)

func malformed(path, format string, args ...interface{}) error {
	return errors.WithMessage(ErrMalformedJSON, path+": "+fmt.Sprintf(format, args...))
}

// at annotates err with the json path it was raised at, keeping the
// sentinel reachable through errors.Is.
func at(path string, err error) error {
	return errors.WithMessage(err, path)
}

package cmd

import (
	"strconv"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/errors"
)

// parsePostID parses a numeric post id argument
func parsePostID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ValidationError("post-id", "must be a positive number")
	}
	return id, nil
}

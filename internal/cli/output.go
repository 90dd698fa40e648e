// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"gitlab.com/fisherprime/strtotime"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// formatResult renders a Result in one of the output formats.
func formatResult(res *strtotime.Result, format string) (string, error) {
	switch format {
	case "", defFormat:
		return res.Time.Format(time.RFC3339Nano), nil
	case "unix":
		return strconv.FormatInt(res.Unix(), 10), nil
	case "yaml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return "", fmt.Errorf("error marshaling result: %w", err)
		}
		return string(data), nil
	case "debug":
		return spew.Sdump(res), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeResult(w io.Writer, res *strtotime.Result, format string) error {
	out, err := formatResult(res, format)
	if err != nil {
		return err
	}

	if len(out) > 0 && out[len(out)-1] == '\n' {
		_, err = io.WriteString(w, out)
	} else {
		_, err = fmt.Fprintln(w, out)
	}

	return err
}

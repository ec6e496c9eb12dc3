package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	remote := &RemoteError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrBadRequest, remote)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, remote)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, remote)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, remote)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrLockConflict, remote)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrInternalServerError, remote)
	default:
		return remote
	}
}

package command

import (
	"github.com/JuinSoft/Celestium/lib/errors"
	"github.com/JuinSoft/Celestium/lib/svc"
)

// extractError builds a human-friendly error out of an API error response.
func extractError(
	status int,
	raw *svc.Resp,
) error {
	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		return errors.Trace(errors.Newf(
			"The registry returned an unexpected response: %d", status))
	}
	return errors.Trace(errors.Newf("%s: %s", e.Code, e.Message))
}

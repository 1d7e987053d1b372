package chat

import (
	"strings"

	"github.com/fwojciec/pagechat"
)

// ClassifyError maps an opaque provider error onto an application error
// code by matching its message, case-insensitively, against the markers
// API_KEY, SAFETY and QUOTA in that order. Anything else is EPROVIDER.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	msg := pagechat.ErrorMessage(err)
	upper := strings.ToUpper(msg)
	switch {
	case strings.Contains(upper, "API_KEY"):
		return pagechat.Errorf(pagechat.ECREDENTIALS, "%s", msg)
	case strings.Contains(upper, "SAFETY"):
		return pagechat.Errorf(pagechat.ESAFETY, "%s", msg)
	case strings.Contains(upper, "QUOTA"):
		return pagechat.Errorf(pagechat.EQUOTA, "%s", msg)
	default:
		return pagechat.Errorf(pagechat.EPROVIDER, "%s", msg)
	}
}

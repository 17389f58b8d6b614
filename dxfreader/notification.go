package dxfreader

import (
	"fmt"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cadkit.dxfreader")

type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationWarning
	NotificationNotImplemented
	NotificationError
)

func (t NotificationType) String() string {
	switch t {
	case NotificationInfo:
		return "info"
	case NotificationWarning:
		return "warning"
	case NotificationNotImplemented:
		return "not implemented"
	case NotificationError:
		return "error"
	default:
		return fmt.Sprintf("NotificationType(%d)", int(t))
	}
}

// Notification reports something the reader recovered from. Line is the
// line of the record concerned, or zero when no single record is.
type Notification struct {
	Type    NotificationType
	Message string
	Line    int
}

func (n Notification) String() string {
	if n.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", n.Line, n.Type, n.Message)
	}
	return fmt.Sprintf("%s: %s", n.Type, n.Message)
}

type NotificationHandler func(Notification)

func logNotification(file string) NotificationHandler {
	return func(n Notification) {
		msg := n.String()
		if file != "" {
			msg = file + ": " + msg
		}
		switch n.Type {
		case NotificationError:
			log.Error(msg)
		case NotificationWarning:
			log.Warning(msg)
		case NotificationNotImplemented:
			log.Notice(msg)
		default:
			log.Info(msg)
		}
	}
}

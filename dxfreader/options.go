package dxfreader

type options struct {
	file   string
	notify NotificationHandler
}

type Option func(*options)

// WithFile names the source in errors and log messages.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// OnNotification receives every notification instead of the logger.
func OnNotification(fn NotificationHandler) Option {
	return func(o *options) {
		o.notify = fn
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.notify == nil {
		o.notify = logNotification(o.file)
	}
	return o
}
